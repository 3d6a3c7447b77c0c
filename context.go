package cl3

// CreateContext creates a context on devices. properties may be nil; a
// list of complete key/value pairs gets its zero terminator appended.
// Context error notification callbacks are not supported.
func CreateContext(properties []ContextProperties, devices []DeviceID) (Context, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	if len(devices) == 0 {
		return 0, InvalidValue
	}
	status := InvalidValue
	ctx := d.CreateContext(zeroTerminated(properties), uint32(len(devices)), &devices[0], &status)
	if err := check(status); err != nil {
		return 0, err
	}
	return ctx, nil
}

// PlatformProperties returns the property list that selects platform.
func PlatformProperties(platform PlatformID) []ContextProperties {
	return []ContextProperties{ContextPlatform, ContextProperties(platform), 0}
}

// RetainContext increments the context reference count.
func RetainContext(ctx Context) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.RetainContext(ctx))
}

// ReleaseContext decrements the context reference count.
func ReleaseContext(ctx Context) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.ReleaseContext(ctx))
}

// zeroTerminated returns a pointer to the first entry of a zero-terminated
// copy of props, or nil for an empty list. Property lists are key/value
// pairs, so only an odd-length list ending in zero is already terminated and
// is passed through as is.
func zeroTerminated[T ~int | ~uintptr](props []T) *T {
	if len(props) == 0 {
		return nil
	}
	if len(props)%2 == 0 || props[len(props)-1] != 0 {
		props = append(props[:len(props):len(props)], 0)
	}
	return &props[0]
}
