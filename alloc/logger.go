package alloc

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs l for allocator events. Allocations and deallocations
// are logged at debug level, failures at warn level. A nil logger silences
// the package.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("alloc"))
}

// Logger returns the logger installed with SetLogger.
func Logger() *zap.Logger {
	return logger.Load()
}
