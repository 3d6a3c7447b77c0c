package cl3

// Owned pairs a handle with its release function and makes sure the
// release runs at most once. There is no finalizer: call Release.
type Owned[H ~uintptr] struct {
	handle   H
	release  func(H) error
	released bool
}

// Own wraps handle so that Release calls release on it once.
func Own[H ~uintptr](handle H, release func(H) error) *Owned[H] {
	return &Owned[H]{handle: handle, release: release}
}

// OwnKernel takes ownership of k, released with ReleaseKernel.
func OwnKernel(k Kernel) *Owned[Kernel] { return Own(k, ReleaseKernel) }

// OwnProgram takes ownership of p, released with ReleaseProgram.
func OwnProgram(p Program) *Owned[Program] { return Own(p, ReleaseProgram) }

// OwnContext takes ownership of c, released with ReleaseContext.
func OwnContext(c Context) *Owned[Context] { return Own(c, ReleaseContext) }

// Handle returns the wrapped handle, which stays valid until Release.
func (o *Owned[H]) Handle() H {
	return o.handle
}

// Released reports whether Release has succeeded.
func (o *Owned[H]) Released() bool {
	return o.released
}

// Release drops the reference held by o. A second call returns ErrReleased
// without reaching the driver. If the native release fails the handle is
// still considered owned.
func (o *Owned[H]) Release() error {
	if o.released {
		return ErrReleased
	}
	if err := o.release(o.handle); err != nil {
		return err
	}
	o.released = true
	return nil
}
