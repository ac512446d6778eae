// Package goroutine launches background work with panic containment.
package goroutine

import (
	"runtime/debug"

	"github.com/tessera-live/tessera/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is logged together
// with its stack trace instead of taking the whole process down.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background goroutine panicked",
					"name", name,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
