//go:build cl_khr_egl_image

package cl3

type eglImageEntries interface {
	CreateFromEGLImage(ctx Context, display EGLDisplayKHR, image EGLImageKHR, flags MemFlags, properties *EGLImagePropertiesKHR, status *Status) Mem
	EnqueueAcquireEGLObjects(queue CommandQueue, numObjects uint32, objects *Mem, numEvents uint32, waitList *Event, event *Event) Status
	EnqueueReleaseEGLObjects(queue CommandQueue, numObjects uint32, objects *Mem, numEvents uint32, waitList *Event, event *Event) Status
}

// CreateFromEGLImage creates a memory object that shares an EGL image.
// properties may be nil.
func CreateFromEGLImage(ctx Context, display EGLDisplayKHR, image EGLImageKHR, flags MemFlags, properties []EGLImagePropertiesKHR) (Mem, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	status := InvalidValue
	mem := d.CreateFromEGLImage(ctx, display, image, flags, zeroTerminated(properties), &status)
	if err := check(status); err != nil {
		return 0, err
	}
	return mem, nil
}

// EnqueueAcquireEGLObjects acquires mems for use by queue and returns the
// event of the acquire command.
func EnqueueAcquireEGLObjects(queue CommandQueue, mems []Mem, waitList []Event) (Event, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	return enqueueEGLObjects(d.EnqueueAcquireEGLObjects, queue, mems, waitList)
}

// EnqueueReleaseEGLObjects hands mems back to EGL and returns the event of
// the release command.
func EnqueueReleaseEGLObjects(queue CommandQueue, mems []Mem, waitList []Event) (Event, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	return enqueueEGLObjects(d.EnqueueReleaseEGLObjects, queue, mems, waitList)
}

type eglObjectsFunc func(queue CommandQueue, numObjects uint32, objects *Mem, numEvents uint32, waitList *Event, event *Event) Status

func enqueueEGLObjects(fn eglObjectsFunc, queue CommandQueue, mems []Mem, waitList []Event) (Event, error) {
	var objects *Mem
	if len(mems) > 0 {
		objects = &mems[0]
	}
	var wait *Event
	if len(waitList) > 0 {
		wait = &waitList[0]
	}
	var event Event
	if err := check(fn(queue, uint32(len(mems)), objects, uint32(len(waitList)), wait, &event)); err != nil {
		return 0, err
	}
	return event, nil
}
