package main

import "github.com/cwbudde/cl3"

// backend is the slice of the OpenCL API the reports need. nativeBackend
// forwards to cl3; tests supply a mock.
type backend interface {
	PlatformIDs() ([]cl3.PlatformID, error)
	PlatformInfo(p cl3.PlatformID, param cl3.PlatformInfo) (cl3.InfoType, error)
	DeviceIDs(p cl3.PlatformID) ([]cl3.DeviceID, error)
	DeviceText(d cl3.DeviceID, param cl3.DeviceInfo) (string, error)

	CreateContext(p cl3.PlatformID, devices []cl3.DeviceID) (cl3.Context, error)
	ReleaseContext(ctx cl3.Context) error

	CreateProgram(ctx cl3.Context, source string) (cl3.Program, error)
	BuildProgram(program cl3.Program, devices []cl3.DeviceID, options string) error
	BuildLog(program cl3.Program, device cl3.DeviceID) (string, error)
	ReleaseProgram(program cl3.Program) error

	CreateKernels(program cl3.Program) ([]cl3.Kernel, error)
	ReleaseKernel(kernel cl3.Kernel) error
	KernelInfo(kernel cl3.Kernel, param cl3.KernelInfo) (cl3.InfoType, error)
	KernelArgInfo(kernel cl3.Kernel, index uint32, param cl3.KernelArgInfo) (cl3.InfoType, error)
	KernelWorkGroupInfo(kernel cl3.Kernel, device cl3.DeviceID, param cl3.KernelWorkGroupInfo) (cl3.InfoType, error)
}

type nativeBackend struct{}

func (nativeBackend) PlatformIDs() ([]cl3.PlatformID, error) {
	return cl3.GetPlatformIDs()
}

func (nativeBackend) PlatformInfo(p cl3.PlatformID, param cl3.PlatformInfo) (cl3.InfoType, error) {
	return cl3.GetPlatformInfo(p, param)
}

func (nativeBackend) DeviceIDs(p cl3.PlatformID) ([]cl3.DeviceID, error) {
	return cl3.GetDeviceIDs(p, cl3.DeviceTypeAll)
}

func (nativeBackend) DeviceText(d cl3.DeviceID, param cl3.DeviceInfo) (string, error) {
	return cl3.GetDeviceText(d, param)
}

func (nativeBackend) CreateContext(p cl3.PlatformID, devices []cl3.DeviceID) (cl3.Context, error) {
	return cl3.CreateContext(cl3.PlatformProperties(p), devices)
}

func (nativeBackend) ReleaseContext(ctx cl3.Context) error {
	return cl3.ReleaseContext(ctx)
}

func (nativeBackend) CreateProgram(ctx cl3.Context, source string) (cl3.Program, error) {
	return cl3.CreateProgramWithSource(ctx, source)
}

func (nativeBackend) BuildProgram(program cl3.Program, devices []cl3.DeviceID, options string) error {
	return cl3.BuildProgram(program, devices, options)
}

func (nativeBackend) BuildLog(program cl3.Program, device cl3.DeviceID) (string, error) {
	return cl3.BuildLog(program, device)
}

func (nativeBackend) ReleaseProgram(program cl3.Program) error {
	return cl3.ReleaseProgram(program)
}

func (nativeBackend) CreateKernels(program cl3.Program) ([]cl3.Kernel, error) {
	return cl3.CreateKernelsInProgram(program)
}

func (nativeBackend) ReleaseKernel(kernel cl3.Kernel) error {
	return cl3.ReleaseKernel(kernel)
}

func (nativeBackend) KernelInfo(kernel cl3.Kernel, param cl3.KernelInfo) (cl3.InfoType, error) {
	return cl3.GetKernelInfo(kernel, param)
}

func (nativeBackend) KernelArgInfo(kernel cl3.Kernel, index uint32, param cl3.KernelArgInfo) (cl3.InfoType, error) {
	return cl3.GetKernelArgInfo(kernel, index, param)
}

func (nativeBackend) KernelWorkGroupInfo(kernel cl3.Kernel, device cl3.DeviceID, param cl3.KernelWorkGroupInfo) (cl3.InfoType, error) {
	return cl3.GetKernelWorkGroupInfo(kernel, device, param)
}
