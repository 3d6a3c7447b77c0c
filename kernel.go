package cl3

import (
	"fmt"
	"unsafe"
)

// KernelInfo selects a clGetKernelInfo query.
type KernelInfo uint32

const (
	KernelFunctionName   KernelInfo = 0x1190
	KernelNumArgs        KernelInfo = 0x1191
	KernelReferenceCount KernelInfo = 0x1192
	KernelContext        KernelInfo = 0x1193
	KernelProgram        KernelInfo = 0x1194
	KernelAttributes     KernelInfo = 0x1195 // OpenCL 1.2
)

var kernelInfoTable = map[KernelInfo]selectorEntry{
	KernelFunctionName:   {"CL_KERNEL_FUNCTION_NAME", KindBytes},
	KernelNumArgs:        {"CL_KERNEL_NUM_ARGS", KindUint},
	KernelReferenceCount: {"CL_KERNEL_REFERENCE_COUNT", KindUint},
	KernelContext:        {"CL_KERNEL_CONTEXT", KindPtr},
	KernelProgram:        {"CL_KERNEL_PROGRAM", KindPtr},
	KernelAttributes:     {"CL_KERNEL_ATTRIBUTES", KindBytes},
}

// KernelInfos lists every kernel selector in code order.
var KernelInfos = []KernelInfo{
	KernelFunctionName,
	KernelNumArgs,
	KernelReferenceCount,
	KernelContext,
	KernelProgram,
	KernelAttributes,
}

// Kind reports the result kind of the selector and whether it is known.
func (p KernelInfo) Kind() (InfoKind, bool) {
	e, ok := kernelInfoTable[p]
	return e.kind, ok
}

// String returns the C name of the selector.
func (p KernelInfo) String() string {
	if e, ok := kernelInfoTable[p]; ok {
		return e.name
	}
	return fmt.Sprintf("KernelInfo(%#x)", uint32(p))
}

// KernelArgInfo selects a clGetKernelArgInfo query.
type KernelArgInfo uint32

const (
	KernelArgAddressQualifier KernelArgInfo = 0x1196
	KernelArgAccessQualifier  KernelArgInfo = 0x1197
	KernelArgTypeName         KernelArgInfo = 0x1198
	KernelArgTypeQualifier    KernelArgInfo = 0x1199
	KernelArgName             KernelArgInfo = 0x119A
)

var kernelArgInfoTable = map[KernelArgInfo]selectorEntry{
	KernelArgAddressQualifier: {"CL_KERNEL_ARG_ADDRESS_QUALIFIER", KindUint},
	KernelArgAccessQualifier:  {"CL_KERNEL_ARG_ACCESS_QUALIFIER", KindUint},
	KernelArgTypeName:         {"CL_KERNEL_ARG_TYPE_NAME", KindBytes},
	KernelArgTypeQualifier:    {"CL_KERNEL_ARG_TYPE_QUALIFIER", KindUlong},
	KernelArgName:             {"CL_KERNEL_ARG_NAME", KindBytes},
}

// KernelArgInfos lists every kernel argument selector in code order.
var KernelArgInfos = []KernelArgInfo{
	KernelArgAddressQualifier,
	KernelArgAccessQualifier,
	KernelArgTypeName,
	KernelArgTypeQualifier,
	KernelArgName,
}

// Kind reports the result kind of the selector and whether it is known.
func (p KernelArgInfo) Kind() (InfoKind, bool) {
	e, ok := kernelArgInfoTable[p]
	return e.kind, ok
}

// String returns the C name of the selector.
func (p KernelArgInfo) String() string {
	if e, ok := kernelArgInfoTable[p]; ok {
		return e.name
	}
	return fmt.Sprintf("KernelArgInfo(%#x)", uint32(p))
}

// KernelWorkGroupInfo selects a clGetKernelWorkGroupInfo query.
type KernelWorkGroupInfo uint32

const (
	KernelWorkGroupSize                  KernelWorkGroupInfo = 0x11B0
	KernelCompileWorkGroupSize           KernelWorkGroupInfo = 0x11B1
	KernelLocalMemSize                   KernelWorkGroupInfo = 0x11B2
	KernelPreferredWorkGroupSizeMultiple KernelWorkGroupInfo = 0x11B3
	KernelPrivateMemSize                 KernelWorkGroupInfo = 0x11B4
	KernelGlobalWorkSize                 KernelWorkGroupInfo = 0x11B5 // OpenCL 1.2
)

var kernelWorkGroupInfoTable = map[KernelWorkGroupInfo]selectorEntry{
	KernelWorkGroupSize:                  {"CL_KERNEL_WORK_GROUP_SIZE", KindSize},
	KernelCompileWorkGroupSize:           {"CL_KERNEL_COMPILE_WORK_GROUP_SIZE", KindSizes},
	KernelLocalMemSize:                   {"CL_KERNEL_LOCAL_MEM_SIZE", KindUlong},
	KernelPreferredWorkGroupSizeMultiple: {"CL_KERNEL_PREFERRED_WORK_GROUP_SIZE_MULTIPLE", KindSize},
	KernelPrivateMemSize:                 {"CL_KERNEL_PRIVATE_MEM_SIZE", KindUlong},
	KernelGlobalWorkSize:                 {"CL_KERNEL_GLOBAL_WORK_SIZE", KindSizes},
}

// KernelWorkGroupInfos lists every work-group selector in code order.
var KernelWorkGroupInfos = []KernelWorkGroupInfo{
	KernelWorkGroupSize,
	KernelCompileWorkGroupSize,
	KernelLocalMemSize,
	KernelPreferredWorkGroupSizeMultiple,
	KernelPrivateMemSize,
	KernelGlobalWorkSize,
}

// Kind reports the result kind of the selector and whether it is known.
func (p KernelWorkGroupInfo) Kind() (InfoKind, bool) {
	e, ok := kernelWorkGroupInfoTable[p]
	return e.kind, ok
}

// String returns the C name of the selector.
func (p KernelWorkGroupInfo) String() string {
	if e, ok := kernelWorkGroupInfoTable[p]; ok {
		return e.name
	}
	return fmt.Sprintf("KernelWorkGroupInfo(%#x)", uint32(p))
}

// CreateKernel creates a kernel object for the named kernel function of a
// successfully built program.
func CreateKernel(program Program, name string) (Kernel, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	status := InvalidValue
	kernel := d.CreateKernel(program, name, &status)
	if err := check(status); err != nil {
		return 0, err
	}
	return kernel, nil
}

// CreateKernelsInProgram creates a kernel object for every kernel function
// in program. The driver is asked for the count first; the returned
// kernels are owned by the caller.
func CreateKernelsInProgram(program Program) ([]Kernel, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}

	var count uint32
	if err := check(d.CreateKernelsInProgram(program, 0, nil, &count)); err != nil {
		return nil, err
	}
	if count == 0 {
		return []Kernel{}, nil
	}

	// The count is not re-validated: a program whose kernel set changes
	// between the two calls gets whatever the driver does for a short buffer.
	kernels := make([]Kernel, count)
	if err := check(d.CreateKernelsInProgram(program, count, &kernels[0], nil)); err != nil {
		return nil, err
	}
	return kernels, nil
}

// RetainKernel increments the kernel reference count.
func RetainKernel(kernel Kernel) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.RetainKernel(kernel))
}

// ReleaseKernel decrements the kernel reference count.
func ReleaseKernel(kernel Kernel) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.ReleaseKernel(kernel))
}

// SetKernelArg sets argument index of kernel to the size bytes at value.
// value must not point to memory that contains Go pointers; nil is valid
// for __local arguments.
func SetKernelArg(kernel Kernel, index uint32, size uintptr, value unsafe.Pointer) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.SetKernelArg(kernel, index, size, value))
}

// SetKernelArgOf sets argument index of kernel to *value, sized from T.
func SetKernelArgOf[T any](kernel Kernel, index uint32, value *T) error {
	return SetKernelArg(kernel, index, unsafe.Sizeof(*value), unsafe.Pointer(value))
}

// SetKernelArgSVMPointer sets argument index of kernel to a shared virtual
// memory pointer.
func SetKernelArgSVMPointer(kernel Kernel, index uint32, ptr unsafe.Pointer) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.SetKernelArgSVMPointer(kernel, index, ptr))
}

// SetKernelExecInfo passes information other than argument values to kernel.
func SetKernelExecInfo(kernel Kernel, param KernelExecInfo, size uintptr, value unsafe.Pointer) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.SetKernelExecInfo(kernel, param, size, value))
}

func kernelInfoFunc(d driver, kernel Kernel, param KernelInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetKernelInfo(kernel, param, size, value, sizeRet)
	}
}

// GetKernelData returns the raw bytes of any kernel query.
func GetKernelData(kernel Kernel, param KernelInfo) ([]byte, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}
	return queryAll[byte](kernelInfoFunc(d, kernel, param))
}

// GetKernelInfo runs a kernel query and decodes it according to the selector.
func GetKernelInfo(kernel Kernel, param KernelInfo) (InfoType, error) {
	kind, ok := param.Kind()
	if !ok {
		return InfoType{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	d, err := current()
	if err != nil {
		return InfoType{}, err
	}
	return queryInfo(kernelInfoFunc(d, kernel, param), kind)
}

func kernelArgInfoFunc(d driver, kernel Kernel, index uint32, param KernelArgInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetKernelArgInfo(kernel, index, param, size, value, sizeRet)
	}
}

// GetKernelArgData returns the raw bytes of any kernel argument query.
func GetKernelArgData(kernel Kernel, index uint32, param KernelArgInfo) ([]byte, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}
	return queryAll[byte](kernelArgInfoFunc(d, kernel, index, param))
}

// GetKernelArgInfo runs a query on argument index of kernel. Argument
// information is only available for programs built with
// -cl-kernel-arg-info or created from source.
func GetKernelArgInfo(kernel Kernel, index uint32, param KernelArgInfo) (InfoType, error) {
	kind, ok := param.Kind()
	if !ok {
		return InfoType{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	d, err := current()
	if err != nil {
		return InfoType{}, err
	}
	return queryInfo(kernelArgInfoFunc(d, kernel, index, param), kind)
}

func kernelWorkGroupInfoFunc(d driver, kernel Kernel, device DeviceID, param KernelWorkGroupInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetKernelWorkGroupInfo(kernel, device, param, size, value, sizeRet)
	}
}

// GetKernelWorkGroupData returns the raw bytes of any work-group query.
func GetKernelWorkGroupData(kernel Kernel, device DeviceID, param KernelWorkGroupInfo) ([]byte, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}
	return queryAll[byte](kernelWorkGroupInfoFunc(d, kernel, device, param))
}

// GetKernelWorkGroupInfo runs a work-group query of kernel on device.
func GetKernelWorkGroupInfo(kernel Kernel, device DeviceID, param KernelWorkGroupInfo) (InfoType, error) {
	kind, ok := param.Kind()
	if !ok {
		return InfoType{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	d, err := current()
	if err != nil {
		return InfoType{}, err
	}
	return queryInfo(kernelWorkGroupInfoFunc(d, kernel, device, param), kind)
}
