// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"imbewu-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!Pass", true},
		{"aB3$efgh", true},
		{"short1!", false},        // under 8 characters
		{"alllowercase1!", false}, // no uppercase
		{"ALLUPPERCASE1!", false}, // no lowercase
		{"NoDigits!!", false},
		{"NoSpecial123", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, validatePasswordStrength(tt.password))
		})
	}
}

// Registration logs the new user straight in: the response carries a signed
// token alongside the profile.
func TestRegisterIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAuthService(newFakeUowFactory(), &fakeMailer{})

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Role:         "seeker",
		FullName:     "Thandi Mokoena",
		Email:        "thandi@example.com",
		Password:     "Str0ng!Pass",
		TermsAgreed:  true,
		EthicsAgreed: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "thandi@example.com", res.User.Email)
	assert.Equal(t, "seeker", res.User.Role)

	parsed, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, res.User.Id.String(), claims["user_id"])
	assert.Equal(t, "seeker", claims["role"])

	// Tokens live for 24 hours.
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp.Time, time.Minute)
}
