// Package testutil holds helpers shared by czjira tests.
package testutil

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wizzomafizzo/czjira/internal/logging"
)

var loggerInitOnce sync.Once

// InitTestLogger silences the global logger once per test binary.
func InitTestLogger(t *testing.T) {
	t.Helper()
	loggerInitOnce.Do(func() {
		log.Logger = zerolog.New(io.Discard)
	})
}

// NewTestContext creates a context with a debug logger attached.
// Returns the context and a function to retrieve the log output.
func NewTestContext(t *testing.T) (ctx context.Context, getLogOutput func() string) {
	t.Helper()

	var logOutput strings.Builder
	syncWriter := zerolog.SyncWriter(&logOutput)

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		ProjectRoot: "/test/project",
		Writer:      syncWriter,
		Level:       zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, logOutput.String
}
