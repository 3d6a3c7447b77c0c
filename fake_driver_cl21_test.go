//go:build cl_version_2_1

package cl3

import "unsafe"

const fakeSubGroupSize = 32

func (f *fakeDriver) CloneKernel(source Kernel, status *Status) Kernel {
	if *status = f.record("CloneKernel"); *status != Success {
		return 0
	}
	src, s := f.kernel(source)
	if s != Success {
		*status = s
		return 0
	}
	id := f.newKernel(src.program, src.name)
	for i, arg := range src.args {
		f.kernels[id].args[i] = append([]byte(nil), arg...)
	}
	return id
}

func (f *fakeDriver) GetKernelSubGroupInfo(kernel Kernel, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetKernelSubGroupInfo(%s,%d,%d)", param, inputSize, size); s != Success {
		return s
	}
	if _, s := f.kernel(kernel); s != Success {
		return s
	}
	var data []byte
	switch param {
	case KernelMaxSubGroupSizeForNDRange:
		if inputSize == 0 || input == nil {
			return InvalidValue
		}
		data = sizeBytes(fakeSubGroupSize)
	case KernelSubGroupCountForNDRange:
		if inputSize == 0 || input == nil {
			return InvalidValue
		}
		local := *(*uintptr)(input)
		data = sizeBytes((local + fakeSubGroupSize - 1) / fakeSubGroupSize)
	case KernelLocalSizeForSubGroupCount:
		if inputSize == 0 || input == nil {
			return InvalidValue
		}
		count := *(*uintptr)(input)
		data = sizesBytes(count*fakeSubGroupSize, 1, 1)
	case KernelMaxNumSubGroups:
		data = sizeBytes(8)
	case KernelCompileNumSubGroups:
		data = sizeBytes(0)
	default:
		return InvalidValue
	}
	return f.info(data, true, size, value, sizeRet)
}
