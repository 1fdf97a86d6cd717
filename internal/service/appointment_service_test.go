// FILE: internal/service/appointment_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Time-window validation happens before any repository access, so a service
// with no backing store is enough here.
func TestAppointmentCreateRejectsBadWindows(t *testing.T) {
	svc := NewAppointmentService(nil, nil)
	now := time.Now()

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantMsg string
	}{
		{
			name:    "end before start",
			start:   now.Add(2 * time.Hour),
			end:     now.Add(1 * time.Hour),
			wantMsg: "End time must be after start time",
		},
		{
			name:    "end equals start",
			start:   now.Add(1 * time.Hour),
			end:     now.Add(1 * time.Hour),
			wantMsg: "End time must be after start time",
		},
		{
			name:    "in the past",
			start:   now.Add(-2 * time.Hour),
			end:     now.Add(-1 * time.Hour),
			wantMsg: "Appointments cannot be booked in the past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateAppointmentRequest{
				ContributorId: uuid.New(),
				Title:         "Seed saving consultation",
				Type:          "video",
				StartTime:     tt.start,
				EndTime:       tt.end,
			})
			require.Error(t, err)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestCheckAvailabilityRejectsInvertedWindow(t *testing.T) {
	svc := NewAppointmentService(nil, nil)
	now := time.Now()

	_, err := svc.CheckAvailability(context.Background(), uuid.New(), now.Add(2*time.Hour), now.Add(1*time.Hour))
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, "End time must be after start time", appErr.Message)
}
