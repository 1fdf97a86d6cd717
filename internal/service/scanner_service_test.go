// FILE: internal/service/scanner_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScannerFixture(t *testing.T) (IScannerService, *fakeEngine) {
	t.Helper()
	engine := &fakeEngine{}
	sessions := memory.NewScannerRepository(time.Hour)
	svc := NewScannerService(sessions, engine, time.Millisecond, nopLogger{})
	return svc, engine
}

func TestScannerStart(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()

	session, err := svc.Start(context.Background(), userId)
	require.NoError(t, err)

	assert.True(t, session.Started)
	assert.True(t, session.Running)
	assert.Equal(t, "scan", session.Mode)
	assert.Equal(t, "environment", session.Facing)
	assert.Equal(t, uint64(1), session.Generation)
	assert.Equal(t, []string{"init:environment", "start"}, engine.Calls())
}

func TestScannerStartIsIdempotent(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()

	first, err := svc.Start(context.Background(), userId)
	require.NoError(t, err)
	second, err := svc.Start(context.Background(), userId)
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	// The live session is returned untouched, not re-initialized.
	assert.Equal(t, []string{"init:environment", "start"}, engine.Calls())
}

func TestScannerStartInitFailure(t *testing.T) {
	engine := &fakeEngine{initErr: assert.AnError}
	sessions := memory.NewScannerRepository(time.Hour)
	svc := NewScannerService(sessions, engine, time.Millisecond, nopLogger{})

	_, err := svc.Start(context.Background(), uuid.New())
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInitialization, appErr.Kind)
	assert.Equal(t, "Failed to initialize camera. Please check permissions and try again.", appErr.Message)
}

func TestScannerDetect(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()

	session, err := svc.Start(context.Background(), userId)
	require.NoError(t, err)

	accepted, err := svc.Detect(context.Background(), userId, session.Id, &dto.DetectRequest{
		Code:       "6001234567890",
		Generation: session.Generation,
	})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, []string{"init:environment", "start", "stop"}, engine.Calls())

	// The same physical scan reported again carries the old generation and
	// is discarded without touching the engine.
	accepted, err = svc.Detect(context.Background(), userId, session.Id, &dto.DetectRequest{
		Code:       "6001234567890",
		Generation: session.Generation,
	})
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, []string{"init:environment", "start", "stop"}, engine.Calls())
}

func TestScannerDetectForeignSession(t *testing.T) {
	svc, _ := newScannerFixture(t)
	owner := uuid.New()

	session, err := svc.Start(context.Background(), owner)
	require.NoError(t, err)

	_, err = svc.Detect(context.Background(), uuid.New(), session.Id, &dto.DetectRequest{
		Code:       "6001234567890",
		Generation: session.Generation,
	})
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindForbidden, appErr.Kind)
}

func TestScannerSwitchFacing(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()

	session, err := svc.Start(context.Background(), userId)
	require.NoError(t, err)

	switched, err := svc.SwitchFacing(context.Background(), userId, session.Id)
	require.NoError(t, err)

	assert.Equal(t, "user", switched.Facing)
	assert.True(t, switched.Running)
	assert.Greater(t, switched.Generation, session.Generation)
	// The old stream must be fully stopped before the new facing
	// initializes.
	assert.Equal(t, []string{"init:environment", "start", "stop", "init:user", "start"}, engine.Calls())
}

func TestScannerSwitchModeStopsAndLazilyReattaches(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.Start(ctx, userId)
	require.NoError(t, err)

	// Leaving scan mode stops the stream.
	manual, err := svc.SwitchMode(ctx, userId, session.Id, &dto.SwitchModeRequest{Mode: "manual"})
	require.NoError(t, err)
	assert.Equal(t, "manual", manual.Mode)
	assert.False(t, manual.Running)
	assert.Equal(t, []string{"init:environment", "start", "stop"}, engine.Calls())

	// Returning to scan mode re-attaches with a bare start.
	scan, err := svc.SwitchMode(ctx, userId, session.Id, &dto.SwitchModeRequest{Mode: "scan"})
	require.NoError(t, err)
	assert.True(t, scan.Running)
	assert.Equal(t, []string{"init:environment", "start", "stop", "start"}, engine.Calls())

	// Re-entering scan mode while already running never double-starts.
	_, err = svc.SwitchMode(ctx, userId, session.Id, &dto.SwitchModeRequest{Mode: "scan"})
	require.NoError(t, err)
	assert.Equal(t, []string{"init:environment", "start", "stop", "start"}, engine.Calls())
}

func TestScannerCaptureRequiresRunning(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()
	ctx := context.Background()

	session, err := svc.Start(ctx, userId)
	require.NoError(t, err)

	require.NoError(t, svc.Capture(ctx, userId, session.Id))
	assert.Contains(t, engine.Calls(), "capture")

	_, err = svc.SwitchMode(ctx, userId, session.Id, &dto.SwitchModeRequest{Mode: "manual"})
	require.NoError(t, err)

	err = svc.Capture(ctx, userId, session.Id)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Scanner is not running", appErr.Message)
}

func TestScannerStopIsIdempotent(t *testing.T) {
	svc, engine := newScannerFixture(t)
	userId := uuid.New()
	ctx := context.Background()

	// Unknown session is a no-op.
	require.NoError(t, svc.Stop(ctx, userId, uuid.New()))
	assert.Empty(t, engine.Calls())

	session, err := svc.Start(ctx, userId)
	require.NoError(t, err)

	// Another user's stop is a no-op too.
	require.NoError(t, svc.Stop(ctx, uuid.New(), session.Id))
	assert.NotContains(t, engine.Calls(), "stop")

	require.NoError(t, svc.Stop(ctx, userId, session.Id))
	assert.Contains(t, engine.Calls(), "stop")

	// The session is gone after Stop.
	_, err = svc.Detect(ctx, userId, session.Id, &dto.DetectRequest{Code: "123", Generation: 1})
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
