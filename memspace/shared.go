package memspace

import "sync"

var (
	sharedOnce  sync.Once
	sharedSpace *AddressSpace
)

// Shared returns the process wide AddressSpace, creating it with the default
// capacity on first access. The instance persists for the life of the
// process and is never reset, Erase included - Erase empties it but leaves
// the same instance in place.
//
// The shared space has no locking of its own. Callers that reach it from
// multiple goroutines are responsible for serialising access, exactly as
// with an instance they constructed themselves.
func Shared() *AddressSpace {
	sharedOnce.Do(func() {
		// New cannot fail with the default capacity.
		sharedSpace, _ = New()
	})
	return sharedSpace
}
