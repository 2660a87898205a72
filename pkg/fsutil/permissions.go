package fsutil

import "fmt"

// Umask represents a umask that is used to mask mode bits.
type Umask uint32

// String renders the mask the way the umask builtin does.
func (mask Umask) String() string {
	return fmt.Sprintf("%04o", uint32(mask))
}

// UmaskSwapper installs a new umask and returns the previous one, as a
// single atomic step.
type UmaskSwapper interface {
	Swap(mask Umask) Umask
}

// WithUmask installs mask for the duration of fn. The previous umask is
// restored on every exit path and fn's error is returned untouched. When
// mask equals current, fn runs without touching the umask.
func WithUmask(u UmaskSwapper, current, mask Umask, fn func() error) error {
	if mask == current {
		return fn()
	}
	old := u.Swap(mask)
	defer u.Swap(old)
	return fn()
}

// CurrentUmask reads the umask without changing it.
func CurrentUmask(u UmaskSwapper) Umask {
	old := u.Swap(0)
	u.Swap(old)
	return old
}
