//go:build opencl && cgo && cl_khr_egl_image

package cl3

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300
#include <CL/cl.h>
#include <CL/cl_egl.h>
*/
import "C"

import "unsafe"

func (cgoDriver) CreateFromEGLImage(ctx Context, display EGLDisplayKHR, image EGLImageKHR, flags MemFlags, properties *EGLImagePropertiesKHR, status *Status) Mem {
	mem := C.clCreateFromEGLImageKHR(
		toC[C.cl_context](ctx),
		toC[C.CLeglDisplayKHR](display),
		toC[C.CLeglImageKHR](image),
		C.cl_mem_flags(flags),
		(*C.cl_egl_image_properties_khr)(unsafe.Pointer(properties)),
		statusC(status),
	)
	return fromC[Mem](mem)
}

func (cgoDriver) EnqueueAcquireEGLObjects(queue CommandQueue, numObjects uint32, objects *Mem, numEvents uint32, waitList *Event, event *Event) Status {
	return Status(C.clEnqueueAcquireEGLObjectsKHR(
		toC[C.cl_command_queue](queue),
		C.cl_uint(numObjects),
		(*C.cl_mem)(unsafe.Pointer(objects)),
		C.cl_uint(numEvents),
		(*C.cl_event)(unsafe.Pointer(waitList)),
		(*C.cl_event)(unsafe.Pointer(event)),
	))
}

func (cgoDriver) EnqueueReleaseEGLObjects(queue CommandQueue, numObjects uint32, objects *Mem, numEvents uint32, waitList *Event, event *Event) Status {
	return Status(C.clEnqueueReleaseEGLObjectsKHR(
		toC[C.cl_command_queue](queue),
		C.cl_uint(numObjects),
		(*C.cl_mem)(unsafe.Pointer(objects)),
		C.cl_uint(numEvents),
		(*C.cl_event)(unsafe.Pointer(waitList)),
		(*C.cl_event)(unsafe.Pointer(event)),
	))
}
