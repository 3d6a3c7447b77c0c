package cl3

import "errors"

// Sentinel errors for conditions that do not come from the native driver.
// A native failure is always reported as a Status instead.
var (
	// ErrNoDriver is returned when the binary was built without the "opencl"
	// build tag (or without cgo), so no native driver is linked.
	ErrNoDriver = errors.New("cl3: OpenCL driver not linked (build with -tags opencl)")

	// ErrInfoKind is returned by InfoType accessors called on a value of
	// another kind.
	ErrInfoKind = errors.New("cl3: info value has a different kind")

	// ErrUnknownParam is returned for a query selector that is not part of
	// the fixed selector table. The driver is not called.
	ErrUnknownParam = errors.New("cl3: unknown query parameter")

	// ErrReleased is returned by Owned.Release once the handle has already
	// been released.
	ErrReleased = errors.New("cl3: handle already released")
)
