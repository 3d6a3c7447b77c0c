//go:build opencl && cgo && cl_version_2_1

package cl3

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300
#include <CL/cl.h>
*/
import "C"

import "unsafe"

func (cgoDriver) CloneKernel(source Kernel, status *Status) Kernel {
	kernel := C.clCloneKernel(toC[C.cl_kernel](source), statusC(status))
	return fromC[Kernel](kernel)
}

func (cgoDriver) GetKernelSubGroupInfo(kernel Kernel, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetKernelSubGroupInfo(
		toC[C.cl_kernel](kernel),
		toC[C.cl_device_id](device),
		C.cl_kernel_sub_group_info(param),
		C.size_t(inputSize), input,
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}
