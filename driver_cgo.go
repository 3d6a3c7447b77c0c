//go:build opencl && cgo

package cl3

/*
#cgo LDFLAGS: -lOpenCL
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300
#include <stdlib.h>
#include <CL/cl.h>
*/
import "C"

import "unsafe"

func init() {
	native = cgoDriver{}
}

// cgoDriver calls straight into the OpenCL ICD loader.
type cgoDriver struct{}

// toC reinterprets a handle as the matching C pointer type. Both have the
// width of a pointer; going through memory keeps vet quiet about
// uintptr-to-pointer conversions.
func toC[T any, H ~uintptr](h H) T {
	return *(*T)(unsafe.Pointer(&h))
}

func fromC[H ~uintptr, T any](c T) H {
	return *(*H)(unsafe.Pointer(&c))
}

func sizeRetC(sizeRet *uintptr) *C.size_t {
	return (*C.size_t)(unsafe.Pointer(sizeRet))
}

func statusC(status *Status) *C.cl_int {
	return (*C.cl_int)(unsafe.Pointer(status))
}

func (cgoDriver) GetPlatformIDs(numEntries uint32, platforms *PlatformID, numPlatforms *uint32) Status {
	return Status(C.clGetPlatformIDs(
		C.cl_uint(numEntries),
		(*C.cl_platform_id)(unsafe.Pointer(platforms)),
		(*C.cl_uint)(unsafe.Pointer(numPlatforms)),
	))
}

func (cgoDriver) GetPlatformInfo(platform PlatformID, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetPlatformInfo(
		toC[C.cl_platform_id](platform),
		C.cl_platform_info(param),
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}

func (cgoDriver) GetDeviceIDs(platform PlatformID, deviceType DeviceType, numEntries uint32, devices *DeviceID, numDevices *uint32) Status {
	return Status(C.clGetDeviceIDs(
		toC[C.cl_platform_id](platform),
		C.cl_device_type(deviceType),
		C.cl_uint(numEntries),
		(*C.cl_device_id)(unsafe.Pointer(devices)),
		(*C.cl_uint)(unsafe.Pointer(numDevices)),
	))
}

func (cgoDriver) GetDeviceInfo(device DeviceID, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetDeviceInfo(
		toC[C.cl_device_id](device),
		C.cl_device_info(param),
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}

func (cgoDriver) CreateContext(properties *ContextProperties, numDevices uint32, devices *DeviceID, status *Status) Context {
	ctx := C.clCreateContext(
		(*C.cl_context_properties)(unsafe.Pointer(properties)),
		C.cl_uint(numDevices),
		(*C.cl_device_id)(unsafe.Pointer(devices)),
		nil, nil,
		statusC(status),
	)
	return fromC[Context](ctx)
}

func (cgoDriver) RetainContext(ctx Context) Status {
	return Status(C.clRetainContext(toC[C.cl_context](ctx)))
}

func (cgoDriver) ReleaseContext(ctx Context) Status {
	return Status(C.clReleaseContext(toC[C.cl_context](ctx)))
}

func (cgoDriver) CreateProgramWithSource(ctx Context, sources []string, status *Status) Program {
	strs := make([]*C.char, len(sources))
	lens := make([]C.size_t, len(sources))
	for i, src := range sources {
		strs[i] = C.CString(src)
		lens[i] = C.size_t(len(src))
	}
	defer func() {
		for _, s := range strs {
			C.free(unsafe.Pointer(s))
		}
	}()
	program := C.clCreateProgramWithSource(
		toC[C.cl_context](ctx),
		C.cl_uint(len(sources)),
		&strs[0], &lens[0],
		statusC(status),
	)
	return fromC[Program](program)
}

func (cgoDriver) BuildProgram(program Program, numDevices uint32, devices *DeviceID, options string) Status {
	var opts *C.char
	if options != "" {
		opts = C.CString(options)
		defer C.free(unsafe.Pointer(opts))
	}
	return Status(C.clBuildProgram(
		toC[C.cl_program](program),
		C.cl_uint(numDevices),
		(*C.cl_device_id)(unsafe.Pointer(devices)),
		opts, nil, nil,
	))
}

func (cgoDriver) GetProgramBuildInfo(program Program, device DeviceID, param ProgramBuildInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetProgramBuildInfo(
		toC[C.cl_program](program),
		toC[C.cl_device_id](device),
		C.cl_program_build_info(param),
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}

func (cgoDriver) RetainProgram(program Program) Status {
	return Status(C.clRetainProgram(toC[C.cl_program](program)))
}

func (cgoDriver) ReleaseProgram(program Program) Status {
	return Status(C.clReleaseProgram(toC[C.cl_program](program)))
}

func (cgoDriver) CreateKernel(program Program, name string, status *Status) Kernel {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	kernel := C.clCreateKernel(toC[C.cl_program](program), cname, statusC(status))
	return fromC[Kernel](kernel)
}

func (cgoDriver) CreateKernelsInProgram(program Program, numKernels uint32, kernels *Kernel, numKernelsRet *uint32) Status {
	return Status(C.clCreateKernelsInProgram(
		toC[C.cl_program](program),
		C.cl_uint(numKernels),
		(*C.cl_kernel)(unsafe.Pointer(kernels)),
		(*C.cl_uint)(unsafe.Pointer(numKernelsRet)),
	))
}

func (cgoDriver) RetainKernel(kernel Kernel) Status {
	return Status(C.clRetainKernel(toC[C.cl_kernel](kernel)))
}

func (cgoDriver) ReleaseKernel(kernel Kernel) Status {
	return Status(C.clReleaseKernel(toC[C.cl_kernel](kernel)))
}

func (cgoDriver) SetKernelArg(kernel Kernel, index uint32, size uintptr, value unsafe.Pointer) Status {
	return Status(C.clSetKernelArg(toC[C.cl_kernel](kernel), C.cl_uint(index), C.size_t(size), value))
}

func (cgoDriver) SetKernelArgSVMPointer(kernel Kernel, index uint32, ptr unsafe.Pointer) Status {
	return Status(C.clSetKernelArgSVMPointer(toC[C.cl_kernel](kernel), C.cl_uint(index), ptr))
}

func (cgoDriver) SetKernelExecInfo(kernel Kernel, param KernelExecInfo, size uintptr, value unsafe.Pointer) Status {
	return Status(C.clSetKernelExecInfo(
		toC[C.cl_kernel](kernel),
		C.cl_kernel_exec_info(param),
		C.size_t(size), value,
	))
}

func (cgoDriver) GetKernelInfo(kernel Kernel, param KernelInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetKernelInfo(
		toC[C.cl_kernel](kernel),
		C.cl_kernel_info(param),
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}

func (cgoDriver) GetKernelArgInfo(kernel Kernel, index uint32, param KernelArgInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetKernelArgInfo(
		toC[C.cl_kernel](kernel),
		C.cl_uint(index),
		C.cl_kernel_arg_info(param),
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}

func (cgoDriver) GetKernelWorkGroupInfo(kernel Kernel, device DeviceID, param KernelWorkGroupInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	return Status(C.clGetKernelWorkGroupInfo(
		toC[C.cl_kernel](kernel),
		toC[C.cl_device_id](device),
		C.cl_kernel_work_group_info(param),
		C.size_t(size), value, sizeRetC(sizeRet),
	))
}
