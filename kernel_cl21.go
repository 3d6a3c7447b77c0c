//go:build cl_version_2_1

package cl3

import (
	"fmt"
	"unsafe"
)

type subGroupEntries interface {
	CloneKernel(source Kernel, status *Status) Kernel
	GetKernelSubGroupInfo(kernel Kernel, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
}

// KernelSubGroupInfo selects a clGetKernelSubGroupInfo query.
type KernelSubGroupInfo uint32

const (
	KernelMaxSubGroupSizeForNDRange KernelSubGroupInfo = 0x2033
	KernelSubGroupCountForNDRange   KernelSubGroupInfo = 0x2034
	KernelLocalSizeForSubGroupCount KernelSubGroupInfo = 0x11B8
	KernelMaxNumSubGroups           KernelSubGroupInfo = 0x11B9
	KernelCompileNumSubGroups       KernelSubGroupInfo = 0x11BA
)

var kernelSubGroupInfoTable = map[KernelSubGroupInfo]selectorEntry{
	KernelMaxSubGroupSizeForNDRange: {"CL_KERNEL_MAX_SUB_GROUP_SIZE_FOR_NDRANGE", KindSize},
	KernelSubGroupCountForNDRange:   {"CL_KERNEL_SUB_GROUP_COUNT_FOR_NDRANGE", KindSize},
	KernelLocalSizeForSubGroupCount: {"CL_KERNEL_LOCAL_SIZE_FOR_SUB_GROUP_COUNT", KindSizes},
	KernelMaxNumSubGroups:           {"CL_KERNEL_MAX_NUM_SUB_GROUPS", KindSize},
	KernelCompileNumSubGroups:       {"CL_KERNEL_COMPILE_NUM_SUB_GROUPS", KindSize},
}

// KernelSubGroupInfos lists every sub-group selector.
var KernelSubGroupInfos = []KernelSubGroupInfo{
	KernelMaxSubGroupSizeForNDRange,
	KernelSubGroupCountForNDRange,
	KernelLocalSizeForSubGroupCount,
	KernelMaxNumSubGroups,
	KernelCompileNumSubGroups,
}

// Kind reports the result kind of the selector and whether it is known.
func (p KernelSubGroupInfo) Kind() (InfoKind, bool) {
	e, ok := kernelSubGroupInfoTable[p]
	return e.kind, ok
}

// String returns the C name of the selector.
func (p KernelSubGroupInfo) String() string {
	if e, ok := kernelSubGroupInfoTable[p]; ok {
		return e.name
	}
	return fmt.Sprintf("KernelSubGroupInfo(%#x)", uint32(p))
}

// CloneKernel makes a shallow copy of source, including its argument values.
func CloneKernel(source Kernel) (Kernel, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	status := InvalidValue
	kernel := d.CloneKernel(source, &status)
	if err := check(status); err != nil {
		return 0, err
	}
	return kernel, nil
}

// kernelSubGroupInfoFunc passes the same input buffer to both the size and
// the fill call.
func kernelSubGroupInfoFunc(d driver, kernel Kernel, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetKernelSubGroupInfo(kernel, device, param, inputSize, input, size, value, sizeRet)
	}
}

// GetKernelSubGroupData returns the raw bytes of any sub-group query.
func GetKernelSubGroupData(kernel Kernel, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer) ([]byte, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}
	return queryAll[byte](kernelSubGroupInfoFunc(d, kernel, device, param, inputSize, input))
}

// GetKernelSubGroupInfo runs a sub-group query. input parameterises the
// query, e.g. the local work size for KernelMaxSubGroupSizeForNDRange or
// the sub-group count for KernelLocalSizeForSubGroupCount.
func GetKernelSubGroupInfo(kernel Kernel, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer) (InfoType, error) {
	kind, ok := param.Kind()
	if !ok {
		return InfoType{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	d, err := current()
	if err != nil {
		return InfoType{}, err
	}
	return queryInfo(kernelSubGroupInfoFunc(d, kernel, device, param, inputSize, input), kind)
}
