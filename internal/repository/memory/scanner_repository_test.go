// FILE: internal/repository/memory/scanner_repository_test.go
package memory

import (
	"testing"
	"time"

	"imbewu-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerRepository(t *testing.T) {
	repo := NewScannerRepository(time.Hour)

	session := &entity.ScannerSession{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Mode:   entity.ScanModeScan,
		Facing: entity.FacingBack,
	}
	repo.Save(session)

	t.Run("lookup by session id", func(t *testing.T) {
		got, ok := repo.Get(session.Id)
		require.True(t, ok)
		assert.Equal(t, session.Id, got.Id)
	})

	t.Run("lookup by user id", func(t *testing.T) {
		got, ok := repo.GetByUser(session.UserId)
		require.True(t, ok)
		assert.Equal(t, session.Id, got.Id)
	})

	t.Run("unknown ids miss", func(t *testing.T) {
		_, ok := repo.Get(uuid.New())
		assert.False(t, ok)
		_, ok = repo.GetByUser(uuid.New())
		assert.False(t, ok)
	})

	t.Run("delete removes both indexes", func(t *testing.T) {
		repo.Delete(session)
		_, ok := repo.Get(session.Id)
		assert.False(t, ok)
		_, ok = repo.GetByUser(session.UserId)
		assert.False(t, ok)
	})
}

func TestScannerRepositoryExpiry(t *testing.T) {
	repo := NewScannerRepository(10 * time.Millisecond)

	session := &entity.ScannerSession{Id: uuid.New(), UserId: uuid.New()}
	repo.Save(session)

	time.Sleep(30 * time.Millisecond)

	_, ok := repo.Get(session.Id)
	assert.False(t, ok, "abandoned sessions expire")
}
