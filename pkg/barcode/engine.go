package barcode

import "context"

// Symbologies recognized by the capture engine.
const (
	SymbologyEAN     = "ean"
	SymbologyEAN8    = "ean_8"
	SymbologyCode128 = "code_128"
	SymbologyUPC     = "upc"
	SymbologyUPCE    = "upc_e"
)

// DefaultSymbologies covers the retail barcodes found on packaged food.
var DefaultSymbologies = []string{
	SymbologyEAN,
	SymbologyEAN8,
	SymbologyCode128,
	SymbologyUPC,
	SymbologyUPCE,
}

// Config describes the capture session the engine should open.
type Config struct {
	SessionId   string   `json:"session_id"`
	Facing      string   `json:"facing"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Symbologies []string `json:"symbologies"`
}

func DefaultConfig(sessionId, facing string) Config {
	return Config{
		SessionId:   sessionId,
		Facing:      facing,
		Width:       640,
		Height:      480,
		Symbologies: DefaultSymbologies,
	}
}

// Engine is the capture collaborator driving the client-side camera. The
// engine is an exclusive resource: callers must fully stop one capture
// session before initializing another.
//
// Init opens a session bound to the configured facing direction; Start begins
// streaming frames through the recognizer; Capture forces a single-shot
// decode of the current frame; Stop tears the session down. All calls are
// bare primitives; sequencing is the caller's job.
type Engine interface {
	Init(ctx context.Context, cfg Config) error
	Start(ctx context.Context, sessionId string) error
	Capture(ctx context.Context, sessionId string) error
	Stop(ctx context.Context, sessionId string) error
}
