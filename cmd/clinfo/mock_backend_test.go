package main

import "github.com/cwbudde/cl3"

// mockBackend serves canned results and counts releases per handle.
type mockBackend struct {
	platforms   []cl3.PlatformID
	platformErr error
	info        map[cl3.PlatformInfo]cl3.InfoType
	devices     []cl3.DeviceID

	buildErr error
	buildLog string
	kernels  map[cl3.Kernel]string

	released map[uintptr]int
	failRel  map[uintptr]error
	options  string
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		platforms: []cl3.PlatformID{0x10},
		info: map[cl3.PlatformInfo]cl3.InfoType{
			cl3.PlatformProfile:        cl3.NewBytesInfo([]byte("FULL_PROFILE\x00")),
			cl3.PlatformName:           cl3.NewBytesInfo([]byte("Mock Platform\x00")),
			cl3.PlatformNumericVersion: cl3.NewUintInfo(uint32(cl3.MakeVersion(3, 0, 0))),
		},
		devices: []cl3.DeviceID{0x20},
		kernels: map[cl3.Kernel]string{
			0x40: "saxpy",
		},
		released: map[uintptr]int{},
		failRel:  map[uintptr]error{},
	}
}

func (m *mockBackend) PlatformIDs() ([]cl3.PlatformID, error) {
	return m.platforms, m.platformErr
}

func (m *mockBackend) PlatformInfo(_ cl3.PlatformID, param cl3.PlatformInfo) (cl3.InfoType, error) {
	if v, ok := m.info[param]; ok {
		return v, nil
	}
	return cl3.InfoType{}, cl3.InvalidValue
}

func (m *mockBackend) DeviceIDs(cl3.PlatformID) ([]cl3.DeviceID, error) {
	return m.devices, nil
}

func (m *mockBackend) DeviceText(_ cl3.DeviceID, param cl3.DeviceInfo) (string, error) {
	switch param {
	case cl3.DeviceName:
		return "Mock GPU", nil
	case cl3.DeviceVendor:
		return "Mock Vendor", nil
	}
	return "", cl3.InvalidValue
}

func (m *mockBackend) CreateContext(cl3.PlatformID, []cl3.DeviceID) (cl3.Context, error) {
	return 0x30, nil
}

func (m *mockBackend) release(h uintptr) error {
	m.released[h]++
	return m.failRel[h]
}

func (m *mockBackend) ReleaseContext(ctx cl3.Context) error { return m.release(uintptr(ctx)) }

func (m *mockBackend) CreateProgram(cl3.Context, string) (cl3.Program, error) {
	return 0x31, nil
}

func (m *mockBackend) BuildProgram(_ cl3.Program, _ []cl3.DeviceID, options string) error {
	m.options = options
	return m.buildErr
}

func (m *mockBackend) BuildLog(cl3.Program, cl3.DeviceID) (string, error) {
	return m.buildLog, nil
}

func (m *mockBackend) ReleaseProgram(p cl3.Program) error { return m.release(uintptr(p)) }

func (m *mockBackend) CreateKernels(cl3.Program) ([]cl3.Kernel, error) {
	ks := make([]cl3.Kernel, 0, len(m.kernels))
	for k := range m.kernels {
		ks = append(ks, k)
	}
	return ks, nil
}

func (m *mockBackend) ReleaseKernel(k cl3.Kernel) error { return m.release(uintptr(k)) }

func (m *mockBackend) KernelInfo(k cl3.Kernel, param cl3.KernelInfo) (cl3.InfoType, error) {
	switch param {
	case cl3.KernelFunctionName:
		return cl3.NewBytesInfo([]byte(m.kernels[k] + "\x00")), nil
	case cl3.KernelNumArgs:
		return cl3.NewUintInfo(1), nil
	case cl3.KernelReferenceCount:
		return cl3.NewUintInfo(1), nil
	}
	return cl3.InfoType{}, cl3.InvalidValue
}

func (m *mockBackend) KernelArgInfo(_ cl3.Kernel, _ uint32, param cl3.KernelArgInfo) (cl3.InfoType, error) {
	switch param {
	case cl3.KernelArgAddressQualifier:
		return cl3.NewUintInfo(cl3.KernelArgAddressGlobal), nil
	case cl3.KernelArgAccessQualifier:
		return cl3.NewUintInfo(cl3.KernelArgAccessNone), nil
	case cl3.KernelArgTypeQualifier:
		return cl3.NewUlongInfo(cl3.KernelArgTypeConst | cl3.KernelArgTypeRestrict), nil
	case cl3.KernelArgName:
		return cl3.NewBytesInfo([]byte("x\x00")), nil
	}
	return cl3.InfoType{}, cl3.KernelArgInfoNotAvailable
}

func (m *mockBackend) KernelWorkGroupInfo(_ cl3.Kernel, _ cl3.DeviceID, param cl3.KernelWorkGroupInfo) (cl3.InfoType, error) {
	if param == cl3.KernelWorkGroupSize {
		return cl3.NewSizeInfo(256), nil
	}
	return cl3.InfoType{}, cl3.InvalidValue
}
