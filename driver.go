package cl3

import "unsafe"

// driver is the table of native OpenCL entry points. Each method maps onto
// exactly one C function with the same argument order; output parameters
// are pointers, and a nil pointer is passed to C as NULL.
//
// Optional entry points live in the embedded capability interfaces, which
// are empty unless their build tag is set.
type driver interface {
	GetPlatformIDs(numEntries uint32, platforms *PlatformID, numPlatforms *uint32) Status
	GetPlatformInfo(platform PlatformID, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	GetDeviceIDs(platform PlatformID, deviceType DeviceType, numEntries uint32, devices *DeviceID, numDevices *uint32) Status
	GetDeviceInfo(device DeviceID, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	CreateContext(properties *ContextProperties, numDevices uint32, devices *DeviceID, status *Status) Context
	RetainContext(ctx Context) Status
	ReleaseContext(ctx Context) Status

	CreateProgramWithSource(ctx Context, sources []string, status *Status) Program
	BuildProgram(program Program, numDevices uint32, devices *DeviceID, options string) Status
	GetProgramBuildInfo(program Program, device DeviceID, param ProgramBuildInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	RetainProgram(program Program) Status
	ReleaseProgram(program Program) Status

	CreateKernel(program Program, name string, status *Status) Kernel
	CreateKernelsInProgram(program Program, numKernels uint32, kernels *Kernel, numKernelsRet *uint32) Status
	RetainKernel(kernel Kernel) Status
	ReleaseKernel(kernel Kernel) Status
	SetKernelArg(kernel Kernel, index uint32, size uintptr, value unsafe.Pointer) Status
	SetKernelArgSVMPointer(kernel Kernel, index uint32, ptr unsafe.Pointer) Status
	SetKernelExecInfo(kernel Kernel, param KernelExecInfo, size uintptr, value unsafe.Pointer) Status
	GetKernelInfo(kernel Kernel, param KernelInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	GetKernelArgInfo(kernel Kernel, index uint32, param KernelArgInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	GetKernelWorkGroupInfo(kernel Kernel, device DeviceID, param KernelWorkGroupInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	subGroupEntries
	eglImageEntries
	eglEventEntries
}

// native is the linked driver, installed by the cgo binding at init.
// It stays nil when the binary is built without the "opencl" tag.
var native driver

func current() (driver, error) {
	if native == nil {
		return nil, ErrNoDriver
	}
	return native, nil
}

// Linked reports whether a native OpenCL driver is compiled into the binary.
func Linked() bool {
	return native != nil
}
