//go:build opencl && cgo && cl_khr_egl_event

package cl3

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300
#include <CL/cl.h>
#include <CL/cl_egl.h>
*/
import "C"

func (cgoDriver) CreateEventFromEGLSync(ctx Context, sync EGLSyncKHR, display EGLDisplayKHR, status *Status) Event {
	event := C.clCreateEventFromEGLSyncKHR(
		toC[C.cl_context](ctx),
		toC[C.CLeglSyncKHR](sync),
		toC[C.CLeglDisplayKHR](display),
		statusC(status),
	)
	return fromC[Event](event)
}
