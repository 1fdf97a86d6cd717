// FILE: internal/service/user_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCulturalGreeting(t *testing.T) {
	tests := []struct {
		affiliation string
		want        string
	}{
		{"zulu", "Sawubona"},
		{"xhosa", "Molo"},
		{"pedi", "Thobela"},
		{"tswana", "Dumela"},
		{"sotho", "Lumela"},
		{"tsonga", "Avuxeni"},
		{"swazi", "Sawubona"},
		{"venda", "Ndaa"},
		{"ndebele", "Lotjhani"},
		{"other", "Hello"},
		{"global", "Welcome"},
		{"", "Hello"},
		{"unknown-affiliation", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.affiliation, func(t *testing.T) {
			assert.Equal(t, tt.want, CulturalGreeting(tt.affiliation))
		})
	}
}

func TestMemberDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      int64
	}{
		{name: "joined today", createdAt: now.Add(-3 * time.Hour), want: 0},
		{name: "one full day", createdAt: now.Add(-25 * time.Hour), want: 1},
		{name: "ninety days", createdAt: now.AddDate(0, 0, -90), want: 90},
		{name: "clock skew never goes negative", createdAt: now.Add(time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, memberDays(tt.createdAt, now))
		})
	}
}
