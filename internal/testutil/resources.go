package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// processGoroutines are started by the test runner or live for the whole process.
var processGoroutines = []goleak.Option{
	goleak.IgnoreTopFunction("testing.tRunner.func1"),
	goleak.IgnoreTopFunction("testing.runTests"),
	goleak.IgnoreTopFunction("testing.(*M).Run"),
	goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
	goleak.IgnoreAnyFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
}

// VerifyNoLeaks fails t if goroutines other than the runner's are still alive. Defer it
// first so it runs after every Close. Tests using it must not call t.Parallel.
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	VerifyNoLeaksWithOptions(t)
}

// VerifyNoLeaksWithOptions is VerifyNoLeaks with extra goleak options.
func VerifyNoLeaksWithOptions(t *testing.T, options ...goleak.Option) {
	t.Helper()

	opts := make([]goleak.Option, 0, len(processGoroutines)+len(options))
	opts = append(opts, processGoroutines...)
	opts = append(opts, options...)
	goleak.VerifyNone(t, opts...)
}
