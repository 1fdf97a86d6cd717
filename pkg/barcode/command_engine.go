package barcode

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Command verbs pushed down to the browser that owns the camera.
const (
	CommandInit    = "init"
	CommandStart   = "start"
	CommandCapture = "capture"
	CommandStop    = "stop"
)

// Command is the wire format for engine instructions. The websocket layer
// relays these verbatim to the connected scanner client.
type Command struct {
	Action string  `json:"action"`
	Config *Config `json:"config,omitempty"`
}

// ScannerChannel is the Redis pub/sub channel carrying commands for one
// capture session.
func ScannerChannel(sessionId string) string {
	return fmt.Sprintf("scanner:%s", sessionId)
}

// CommandEngine drives the remote capture engine by publishing commands over
// Redis pub/sub; the websocket hub subscribed to the session channel forwards
// them to the browser.
type CommandEngine struct {
	redis *redis.Client
}

func NewCommandEngine(redisClient *redis.Client) Engine {
	return &CommandEngine{redis: redisClient}
}

func (e *CommandEngine) publish(ctx context.Context, sessionId string, cmd Command) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal engine command: %w", err)
	}
	if err := e.redis.Publish(ctx, ScannerChannel(sessionId), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish engine command %q: %w", cmd.Action, err)
	}
	return nil
}

func (e *CommandEngine) Init(ctx context.Context, cfg Config) error {
	return e.publish(ctx, cfg.SessionId, Command{Action: CommandInit, Config: &cfg})
}

func (e *CommandEngine) Start(ctx context.Context, sessionId string) error {
	return e.publish(ctx, sessionId, Command{Action: CommandStart})
}

func (e *CommandEngine) Capture(ctx context.Context, sessionId string) error {
	return e.publish(ctx, sessionId, Command{Action: CommandCapture})
}

func (e *CommandEngine) Stop(ctx context.Context, sessionId string) error {
	return e.publish(ctx, sessionId, Command{Action: CommandStop})
}
