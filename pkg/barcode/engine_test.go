package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("session-1", "environment")

	assert.Equal(t, "session-1", cfg.SessionId)
	assert.Equal(t, "environment", cfg.Facing)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, DefaultSymbologies, cfg.Symbologies)
}

func TestScannerChannel(t *testing.T) {
	assert.Equal(t, "scanner:abc", ScannerChannel("abc"))
}
