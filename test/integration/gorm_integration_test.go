package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CertificateRepository())
	assert.NotNil(t, uow.VerificationRecordRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Verification History Round Trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleSeeker,
			Status:   entity.UserStatusActive,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		record := &entity.VerificationRecord{
			Id:         uuid.New(),
			Barcode:    "6001234567890",
			UserId:     user.Id,
			Status:     entity.VerificationStatusVerified,
			VerifiedBy: "System Auto-Check",
			CreatedAt:  time.Now(),
		}
		require.NoError(t, uow.VerificationRecordRepository().Create(ctx, record))

		found, err := uow.VerificationRecordRepository().FindAll(ctx,
			specification.ByBarcode{Barcode: record.Barcode},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, found)

		// Cleanup
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})
}
