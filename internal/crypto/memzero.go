package crypto

import "runtime"

// Wipe zeroes secret material once it is no longer needed. Best-effort:
// the noinline directive plus KeepAlive stop the compiler from treating
// the stores as dead writes.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
