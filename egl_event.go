//go:build cl_khr_egl_event

package cl3

type eglEventEntries interface {
	CreateEventFromEGLSync(ctx Context, sync EGLSyncKHR, display EGLDisplayKHR, status *Status) Event
}

// CreateEventFromEGLSync creates an event that completes when the EGL fence
// sync object is signalled. Its command type is CommandEGLFenceSyncObjectKHR.
func CreateEventFromEGLSync(ctx Context, sync EGLSyncKHR, display EGLDisplayKHR) (Event, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	status := InvalidValue
	event := d.CreateEventFromEGLSync(ctx, sync, display, &status)
	if err := check(status); err != nil {
		return 0, err
	}
	return event, nil
}
