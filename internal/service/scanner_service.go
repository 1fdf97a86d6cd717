package service

import (
	"context"
	"sync"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/logger"
	"imbewu-be/internal/repository/memory"
	"imbewu-be/pkg/barcode"

	"github.com/google/uuid"
)

type IScannerService interface {
	Start(ctx context.Context, userId uuid.UUID) (*dto.ScannerSessionResponse, error)
	Detect(ctx context.Context, userId, sessionId uuid.UUID, req *dto.DetectRequest) (accepted bool, err error)
	Capture(ctx context.Context, userId, sessionId uuid.UUID) error
	SwitchFacing(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ScannerSessionResponse, error)
	SwitchMode(ctx context.Context, userId, sessionId uuid.UUID, req *dto.SwitchModeRequest) (*dto.ScannerSessionResponse, error)
	Stop(ctx context.Context, userId, sessionId uuid.UUID) error
}

// scannerService owns the capture session state machine:
// Idle -> Started/Running -> Idle, with facing switches going through a full
// stop, a settle delay for the camera hardware to release, then a restart.
type scannerService struct {
	sessions    *memory.ScannerRepository
	engine      barcode.Engine
	settleDelay time.Duration
	logger      logger.ILogger

	// Serializes all engine transitions; the engine is an exclusive
	// resource and two overlapping capture sessions are undefined behavior.
	mu sync.Mutex
}

func NewScannerService(sessions *memory.ScannerRepository, engine barcode.Engine, settleDelay time.Duration, log logger.ILogger) IScannerService {
	return &scannerService{
		sessions:    sessions,
		engine:      engine,
		settleDelay: settleDelay,
		logger:      log,
	}
}

// Start is idempotent: a second call while the user's session is live
// returns the existing session untouched.
func (s *scannerService) Start(ctx context.Context, userId uuid.UUID) (*dto.ScannerSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions.GetByUser(userId); ok && existing.Started {
		return toSessionResponse(existing), nil
	}

	session := &entity.ScannerSession{
		Id:         uuid.New(),
		UserId:     userId,
		Mode:       entity.ScanModeScan,
		Facing:     entity.FacingBack,
		Generation: 1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.initAndStart(ctx, session); err != nil {
		return nil, err
	}

	s.sessions.Save(session)
	return toSessionResponse(session), nil
}

// Detect handles a barcode reported by the engine. The engine is stopped
// immediately so one physical scan cannot fire twice; detections carrying a
// stale generation (from a stream that was already stopped) are discarded.
func (s *scannerService) Detect(ctx context.Context, userId, sessionId uuid.UUID, req *dto.DetectRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.ownedSession(userId, sessionId)
	if err != nil {
		return false, err
	}

	if !session.Running || req.Generation != session.Generation {
		s.logger.Debug("Scanner", "Discarding stale detection", map[string]interface{}{
			"session_id": sessionId,
			"generation": req.Generation,
		})
		return false, nil
	}

	if err := s.engine.Stop(ctx, session.Id.String()); err != nil {
		s.logger.Warn("Scanner", "Engine stop after detection failed", map[string]interface{}{"error": err.Error()})
	}
	session.Running = false
	session.Generation++
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)

	return true, nil
}

// Capture forces a single-shot decode of the current frame.
func (s *scannerService) Capture(ctx context.Context, userId, sessionId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.ownedSession(userId, sessionId)
	if err != nil {
		return err
	}
	if !session.Running {
		return apperrors.Validation("Scanner is not running")
	}
	return s.engine.Capture(ctx, session.Id.String())
}

// SwitchFacing flips the camera. Ordering is load-bearing: the old stream
// must be fully stopped and given the settle delay to release the hardware
// before the new one initializes.
func (s *scannerService) SwitchFacing(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ScannerSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.ownedSession(userId, sessionId)
	if err != nil {
		return nil, err
	}

	if session.Running {
		if err := s.engine.Stop(ctx, session.Id.String()); err != nil {
			s.logger.Warn("Scanner", "Engine stop before facing switch failed", map[string]interface{}{"error": err.Error()})
		}
		session.Running = false
	}

	session.Facing = session.Facing.Toggle()
	session.Generation++

	select {
	case <-time.After(s.settleDelay):
	case <-ctx.Done():
		s.sessions.Save(session)
		return nil, ctx.Err()
	}

	if err := s.initAndStart(ctx, session); err != nil {
		s.sessions.Save(session)
		return nil, err
	}

	s.sessions.Save(session)
	return toSessionResponse(session), nil
}

// SwitchMode changes the active input mode. Re-entering scan mode lazily
// re-attaches the engine if it was started before but is not running now;
// it never double-starts. Leaving scan mode stops a running stream.
func (s *scannerService) SwitchMode(ctx context.Context, userId, sessionId uuid.UUID, req *dto.SwitchModeRequest) (*dto.ScannerSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.ownedSession(userId, sessionId)
	if err != nil {
		return nil, err
	}

	mode := entity.ScanMode(req.Mode)
	if !entity.ValidScanMode(mode) {
		return nil, apperrors.Validation("Unknown scanner mode")
	}

	if mode == entity.ScanModeScan {
		if session.Started && !session.Running {
			if err := s.engine.Start(ctx, session.Id.String()); err != nil {
				return nil, apperrors.Initialization("Failed to initialize camera. Please check permissions and try again.", err)
			}
			session.Running = true
			session.Generation++
		}
	} else if session.Running {
		if err := s.engine.Stop(ctx, session.Id.String()); err != nil {
			s.logger.Warn("Scanner", "Engine stop on mode exit failed", map[string]interface{}{"error": err.Error()})
		}
		session.Running = false
	}

	session.Mode = mode
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)
	return toSessionResponse(session), nil
}

// Stop is idempotent; stopping an unknown or already-stopped session is a
// no-op.
func (s *scannerService) Stop(ctx context.Context, userId, sessionId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(sessionId)
	if !ok || session.UserId != userId {
		return nil
	}

	if session.Running {
		if err := s.engine.Stop(ctx, session.Id.String()); err != nil {
			s.logger.Warn("Scanner", "Engine stop failed", map[string]interface{}{"error": err.Error()})
		}
	}
	s.sessions.Delete(session)
	return nil
}

func (s *scannerService) ownedSession(userId, sessionId uuid.UUID) (*entity.ScannerSession, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, apperrors.NotFound("Scanner session not found")
	}
	if session.UserId != userId {
		return nil, apperrors.Forbidden("Scanner session belongs to another user")
	}
	return session, nil
}

func (s *scannerService) initAndStart(ctx context.Context, session *entity.ScannerSession) error {
	cfg := barcode.DefaultConfig(session.Id.String(), string(session.Facing))
	if err := s.engine.Init(ctx, cfg); err != nil {
		session.Started = false
		session.Running = false
		return apperrors.Initialization("Failed to initialize camera. Please check permissions and try again.", err)
	}
	if err := s.engine.Start(ctx, session.Id.String()); err != nil {
		session.Started = false
		session.Running = false
		return apperrors.Initialization("Failed to initialize camera. Please check permissions and try again.", err)
	}
	session.Started = true
	session.Running = true
	session.UpdatedAt = time.Now()
	return nil
}

func toSessionResponse(session *entity.ScannerSession) *dto.ScannerSessionResponse {
	return &dto.ScannerSessionResponse{
		Id:         session.Id,
		Mode:       string(session.Mode),
		Facing:     string(session.Facing),
		Started:    session.Started,
		Running:    session.Running,
		Generation: session.Generation,
	}
}
