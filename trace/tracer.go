package trace

import (
	"basic/types"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer. Filters are glob patterns matched
// against statement kinds (PRINT, GOSUB, FOR, ...); none means trace everything.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a statement kind matches any of the filter patterns
func (t *Tracer) matchesFilter(kind string) bool {
	if len(t.filters) == 0 {
		return true
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, kind); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) printf(kind, format string, args ...any) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] "+format+"\n", args...)
}

// Statement logs a statement about to execute
func (t *Tracer) Statement(index int, line int, kind, text string) {
	t.printf(kind, "STMT %d line=%d %s", index, line, text)
}

// Jump logs a transfer of control that does not follow the next-link
func (t *Tracer) Jump(kind string, from, to int, label string) {
	if label != "" {
		t.printf(kind, "JUMP %s %d -> %d (%s)", kind, from, to, label)
		return
	}
	t.printf(kind, "JUMP %s %d -> %d", kind, from, to)
}

// Frame logs a push or pop on the frame stack
func (t *Tracer) Frame(kind, op, frame string, depth int) {
	t.printf(kind, "  %s %s depth=%d", op, frame, depth)
}

// Error logs a runtime error
func (t *Tracer) Error(kind string, index int, code types.ErrorCode, msg string) {
	t.printf(kind, "ERROR %d %s %s", index, code, msg)
}

// Global convenience functions

// Statement logs a statement using the global tracer
func Statement(index int, line int, kind, text string) {
	if globalTracer != nil {
		globalTracer.Statement(index, line, kind, text)
	}
}

// Jump logs a jump using the global tracer
func Jump(kind string, from, to int, label string) {
	if globalTracer != nil {
		globalTracer.Jump(kind, from, to, label)
	}
}

// Frame logs a frame push or pop using the global tracer
func Frame(kind, op, frame string, depth int) {
	if globalTracer != nil {
		globalTracer.Frame(kind, op, frame, depth)
	}
}

// Error logs a runtime error using the global tracer
func Error(kind string, index int, code types.ErrorCode, msg string) {
	if globalTracer != nil {
		globalTracer.Error(kind, index, code, msg)
	}
}
