package cl3

import (
	"fmt"
	"reflect"
	"testing"
	"unsafe"

	"github.com/cwbudde/cl3/internal/cpu"
)

// fakeDriver is an in-memory driver. It keeps reference counts for kernels
// and records every call so tests can check the native calling sequence.
type fakeDriver struct {
	calls []string

	platforms    []PlatformID
	platformInfo map[PlatformID]map[PlatformInfo][]byte
	platformErr  Status

	devices    map[PlatformID][]DeviceID
	deviceInfo map[DeviceID]map[DeviceInfo][]byte

	contexts     map[Context]int
	contextProps [][2]ContextProperties
	nextObj      uintptr

	programs map[Program]*fakeProgram
	kernels  map[Kernel]*fakeKernel

	// fail forces calls whose record starts with the key to return the status.
	fail map[string]Status
	// fillErr, when set, fails every info fill call after a good size call.
	fillErr Status
}

type fakeProgram struct {
	refs    int
	source  []string
	built   bool
	options string
	log     string
	kernels []string
}

type fakeKernel struct {
	refs    int
	program Program
	name    string
	args    map[uint32][]byte
	argInfo []map[KernelArgInfo][]byte
	groups  map[KernelWorkGroupInfo][]byte
}

// assertDriverLacks fails if the driver table has any of names in a build
// without tag.
func assertDriverLacks(t *testing.T, tag string, names ...string) {
	t.Helper()

	typ := reflect.TypeOf((*driver)(nil)).Elem()
	for _, name := range names {
		if _, ok := typ.MethodByName(name); ok {
			t.Errorf("driver has %s without the %s tag", name, tag)
		}
	}
}

// propertyPairs walks a zero-terminated key/value list the way a driver
// does: a pair at a time until a zero key.
func propertyPairs[T ~int](p *T) [][2]T {
	if p == nil {
		return nil
	}
	var pairs [][2]T
	step := unsafe.Sizeof(*p)
	for *p != 0 {
		v := (*T)(unsafe.Add(unsafe.Pointer(p), step))
		pairs = append(pairs, [2]T{*p, *v})
		p = (*T)(unsafe.Add(unsafe.Pointer(v), step))
	}
	return pairs
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		platformInfo: map[PlatformID]map[PlatformInfo][]byte{},
		devices:      map[PlatformID][]DeviceID{},
		deviceInfo:   map[DeviceID]map[DeviceInfo][]byte{},
		contexts:     map[Context]int{},
		programs:     map[Program]*fakeProgram{},
		kernels:      map[Kernel]*fakeKernel{},
		fail:         map[string]Status{},
		nextObj:      0x1000,
	}
}

// withDriver installs d as the native driver for the duration of the test.
func withDriver(t *testing.T, d driver) {
	t.Helper()
	prev := native
	native = d
	t.Cleanup(func() { native = prev })
}

func (f *fakeDriver) record(format string, args ...any) Status {
	call := fmt.Sprintf(format, args...)
	f.calls = append(f.calls, call)
	for name, s := range f.fail {
		if len(call) >= len(name) && call[:len(name)] == name {
			return s
		}
	}
	return Success
}

func (f *fakeDriver) alloc() uintptr {
	f.nextObj += 0x10
	return f.nextObj
}

// addPlatform registers a platform with the usual text queries filled in.
func (f *fakeDriver) addPlatform(name string) PlatformID {
	id := PlatformID(f.alloc())
	f.platforms = append(f.platforms, id)
	exts := nameVersions(
		nv("cl_khr_icd", MakeVersion(1, 0, 0)),
		nv("cl_khr_egl_image", MakeVersion(1, 0, 0)),
	)
	f.platformInfo[id] = map[PlatformInfo][]byte{
		PlatformProfile:               cstr("FULL_PROFILE"),
		PlatformVersion:               cstr("OpenCL 3.0 fake"),
		PlatformName:                  cstr(name),
		PlatformVendor:                cstr("cl3 test vendor"),
		PlatformExtensions:            cstr("cl_khr_icd cl_khr_egl_image"),
		PlatformHostTimerResolution:   u64(1),
		PlatformNumericVersion:        u32(uint32(MakeVersion(3, 0, 0))),
		PlatformExtensionsWithVersion: exts,
	}
	return id
}

func (f *fakeDriver) addDevice(platform PlatformID, name string) DeviceID {
	id := DeviceID(f.alloc())
	f.devices[platform] = append(f.devices[platform], id)
	f.deviceInfo[id] = map[DeviceInfo][]byte{
		DeviceTypeInfo: u64(uint64(DeviceTypeGPU)),
		DeviceName:     cstr(name),
		DeviceVendor:   cstr("cl3 test vendor"),
		DeviceVersion:  cstr("OpenCL 3.0"),
	}
	return id
}

// addProgram registers an already built program exposing kernels.
func (f *fakeDriver) addProgram(kernels ...string) Program {
	id := Program(f.alloc())
	f.programs[id] = &fakeProgram{refs: 1, built: true, kernels: kernels}
	return id
}

func (f *fakeDriver) newKernel(program Program, name string) Kernel {
	id := Kernel(f.alloc())
	f.kernels[id] = &fakeKernel{
		refs:    1,
		program: program,
		name:    name,
		args:    map[uint32][]byte{},
		argInfo: []map[KernelArgInfo][]byte{{
			KernelArgAddressQualifier: u32(KernelArgAddressGlobal),
			KernelArgAccessQualifier:  u32(KernelArgAccessNone),
			KernelArgTypeName:         cstr("float*"),
			KernelArgTypeQualifier:    u64(KernelArgTypeConst),
			KernelArgName:             cstr("input"),
		}},
		groups: map[KernelWorkGroupInfo][]byte{
			KernelWorkGroupSize:                  sizeBytes(256),
			KernelCompileWorkGroupSize:           sizesBytes(0, 0, 0),
			KernelLocalMemSize:                   u64(0),
			KernelPreferredWorkGroupSizeMultiple: sizeBytes(32),
			KernelPrivateMemSize:                 u64(64),
		},
	}
	return id
}

// info answers one query of the two-phase protocol from data.
func (f *fakeDriver) info(data []byte, ok bool, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if !ok {
		return InvalidValue
	}
	if value != nil {
		if f.fillErr != Success {
			return f.fillErr
		}
		if size < uintptr(len(data)) {
			return InvalidValue
		}
		copy(unsafe.Slice((*byte)(value), size), data)
	}
	if sizeRet != nil {
		*sizeRet = uintptr(len(data))
	}
	return Success
}

func (f *fakeDriver) GetPlatformIDs(numEntries uint32, platforms *PlatformID, numPlatforms *uint32) Status {
	if s := f.record("GetPlatformIDs(%d,%t,%t)", numEntries, platforms != nil, numPlatforms != nil); s != Success {
		return s
	}
	if f.platformErr != Success {
		return f.platformErr
	}
	if numEntries == 0 && platforms != nil {
		return InvalidValue
	}
	if platforms != nil {
		copy(unsafe.Slice(platforms, numEntries), f.platforms)
	}
	if numPlatforms != nil {
		*numPlatforms = uint32(len(f.platforms))
	}
	return Success
}

func (f *fakeDriver) GetPlatformInfo(platform PlatformID, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetPlatformInfo(%s,%d)", param, size); s != Success {
		return s
	}
	table, ok := f.platformInfo[platform]
	if !ok {
		return InvalidPlatform
	}
	data, ok := table[param]
	return f.info(data, ok, size, value, sizeRet)
}

func (f *fakeDriver) GetDeviceIDs(platform PlatformID, deviceType DeviceType, numEntries uint32, devices *DeviceID, numDevices *uint32) Status {
	if s := f.record("GetDeviceIDs(%d,%t)", numEntries, devices != nil); s != Success {
		return s
	}
	if _, ok := f.platformInfo[platform]; !ok {
		return InvalidPlatform
	}
	ids := f.devices[platform]
	if len(ids) == 0 {
		return DeviceNotFound
	}
	if devices != nil {
		copy(unsafe.Slice(devices, numEntries), ids)
	}
	if numDevices != nil {
		*numDevices = uint32(len(ids))
	}
	return Success
}

func (f *fakeDriver) GetDeviceInfo(device DeviceID, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetDeviceInfo(%s,%d)", param, size); s != Success {
		return s
	}
	table, ok := f.deviceInfo[device]
	if !ok {
		return InvalidDevice
	}
	data, ok := table[param]
	return f.info(data, ok, size, value, sizeRet)
}

func (f *fakeDriver) CreateContext(properties *ContextProperties, numDevices uint32, devices *DeviceID, status *Status) Context {
	f.contextProps = propertyPairs(properties)
	for _, kv := range f.contextProps {
		if kv[0] != ContextPlatform && kv[0] != ContextInteropUserSync {
			*status = InvalidProperty
			return 0
		}
	}
	if *status = f.record("CreateContext(%d)", numDevices); *status != Success {
		return 0
	}
	for _, d := range unsafe.Slice(devices, numDevices) {
		if _, ok := f.deviceInfo[d]; !ok {
			*status = InvalidDevice
			return 0
		}
	}
	ctx := Context(f.alloc())
	f.contexts[ctx] = 1
	return ctx
}

func (f *fakeDriver) RetainContext(ctx Context) Status {
	if s := f.record("RetainContext"); s != Success {
		return s
	}
	if f.contexts[ctx] == 0 {
		return InvalidContext
	}
	f.contexts[ctx]++
	return Success
}

func (f *fakeDriver) ReleaseContext(ctx Context) Status {
	if s := f.record("ReleaseContext"); s != Success {
		return s
	}
	if f.contexts[ctx] == 0 {
		return InvalidContext
	}
	f.contexts[ctx]--
	return Success
}

func (f *fakeDriver) CreateProgramWithSource(ctx Context, sources []string, status *Status) Program {
	if *status = f.record("CreateProgramWithSource(%d)", len(sources)); *status != Success {
		return 0
	}
	if f.contexts[ctx] == 0 {
		*status = InvalidContext
		return 0
	}
	id := Program(f.alloc())
	f.programs[id] = &fakeProgram{refs: 1, source: sources}
	return id
}

func (f *fakeDriver) BuildProgram(program Program, numDevices uint32, devices *DeviceID, options string) Status {
	if s := f.record("BuildProgram(%d,%q)", numDevices, options); s != Success {
		return s
	}
	p, ok := f.programs[program]
	if !ok || p.refs == 0 {
		return InvalidProgram
	}
	p.options = options
	for _, src := range p.source {
		if src == "syntax error" {
			p.log = "error: expected identifier\x00"
			return BuildProgramFailure
		}
	}
	p.built = true
	p.log = "\x00"
	if len(p.kernels) == 0 {
		p.kernels = []string{"saxpy"}
	}
	return Success
}

func (f *fakeDriver) GetProgramBuildInfo(program Program, device DeviceID, param ProgramBuildInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetProgramBuildInfo(%s,%d)", param, size); s != Success {
		return s
	}
	p, ok := f.programs[program]
	if !ok {
		return InvalidProgram
	}
	var data []byte
	switch param {
	case ProgramBuildStatus:
		st := BuildSuccess
		if !p.built {
			st = BuildError
		}
		data = u32(uint32(st))
	case ProgramBuildOptions:
		data = cstr(p.options)
	case ProgramBuildLog:
		data = []byte(p.log)
	default:
		return f.info(nil, false, size, value, sizeRet)
	}
	return f.info(data, true, size, value, sizeRet)
}

func (f *fakeDriver) RetainProgram(program Program) Status {
	if s := f.record("RetainProgram"); s != Success {
		return s
	}
	p, ok := f.programs[program]
	if !ok || p.refs == 0 {
		return InvalidProgram
	}
	p.refs++
	return Success
}

func (f *fakeDriver) ReleaseProgram(program Program) Status {
	if s := f.record("ReleaseProgram"); s != Success {
		return s
	}
	p, ok := f.programs[program]
	if !ok || p.refs == 0 {
		return InvalidProgram
	}
	p.refs--
	return Success
}

func (f *fakeDriver) CreateKernel(program Program, name string, status *Status) Kernel {
	if *status = f.record("CreateKernel(%s)", name); *status != Success {
		return 0
	}
	p, ok := f.programs[program]
	if !ok || p.refs == 0 {
		*status = InvalidProgram
		return 0
	}
	if !p.built {
		*status = InvalidProgramExecutable
		return 0
	}
	for _, k := range p.kernels {
		if k == name {
			return f.newKernel(program, name)
		}
	}
	*status = InvalidKernelName
	return 0
}

func (f *fakeDriver) CreateKernelsInProgram(program Program, numKernels uint32, kernels *Kernel, numKernelsRet *uint32) Status {
	if s := f.record("CreateKernelsInProgram(%d,%t,%t)", numKernels, kernels != nil, numKernelsRet != nil); s != Success {
		return s
	}
	p, ok := f.programs[program]
	if !ok || p.refs == 0 {
		return InvalidProgram
	}
	if !p.built {
		return InvalidProgramExecutable
	}
	if kernels != nil {
		if numKernels < uint32(len(p.kernels)) {
			return InvalidValue
		}
		out := unsafe.Slice(kernels, numKernels)
		for i, name := range p.kernels {
			out[i] = f.newKernel(program, name)
		}
	}
	if numKernelsRet != nil {
		*numKernelsRet = uint32(len(p.kernels))
	}
	return Success
}

func (f *fakeDriver) kernel(k Kernel) (*fakeKernel, Status) {
	fk, ok := f.kernels[k]
	if !ok || fk.refs == 0 {
		return nil, InvalidKernel
	}
	return fk, Success
}

func (f *fakeDriver) RetainKernel(kernel Kernel) Status {
	if s := f.record("RetainKernel"); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	fk.refs++
	return Success
}

func (f *fakeDriver) ReleaseKernel(kernel Kernel) Status {
	if s := f.record("ReleaseKernel"); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	fk.refs--
	return Success
}

func (f *fakeDriver) SetKernelArg(kernel Kernel, index uint32, size uintptr, value unsafe.Pointer) Status {
	if s := f.record("SetKernelArg(%d,%d,%t)", index, size, value != nil); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	if index >= uint32(len(fk.argInfo)) {
		return InvalidArgIndex
	}
	if size == 0 {
		return InvalidArgSize
	}
	var arg []byte
	if value != nil {
		arg = append(arg, unsafe.Slice((*byte)(value), size)...)
	}
	fk.args[index] = arg
	return Success
}

func (f *fakeDriver) SetKernelArgSVMPointer(kernel Kernel, index uint32, ptr unsafe.Pointer) Status {
	if s := f.record("SetKernelArgSVMPointer(%d,%t)", index, ptr != nil); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	if index >= uint32(len(fk.argInfo)) {
		return InvalidArgIndex
	}
	fk.args[index] = sizeBytes(uintptr(ptr))
	return Success
}

func (f *fakeDriver) SetKernelExecInfo(kernel Kernel, param KernelExecInfo, size uintptr, value unsafe.Pointer) Status {
	if s := f.record("SetKernelExecInfo(%#x,%d)", uint32(param), size); s != Success {
		return s
	}
	if _, s := f.kernel(kernel); s != Success {
		return s
	}
	if param != KernelExecInfoSVMPtrs && param != KernelExecInfoSVMFineGrainSystem {
		return InvalidValue
	}
	return Success
}

func (f *fakeDriver) GetKernelInfo(kernel Kernel, param KernelInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetKernelInfo(%s,%d)", param, size); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	var data []byte
	switch param {
	case KernelFunctionName:
		data = cstr(fk.name)
	case KernelNumArgs:
		data = u32(uint32(len(fk.argInfo)))
	case KernelReferenceCount:
		data = u32(uint32(fk.refs))
	case KernelContext:
		data = sizeBytes(0xc0)
	case KernelProgram:
		data = sizeBytes(uintptr(fk.program))
	case KernelAttributes:
		data = cstr("")
	default:
		return InvalidValue
	}
	return f.info(data, true, size, value, sizeRet)
}

func (f *fakeDriver) GetKernelArgInfo(kernel Kernel, index uint32, param KernelArgInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetKernelArgInfo(%d,%s,%d)", index, param, size); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	if index >= uint32(len(fk.argInfo)) {
		return InvalidArgIndex
	}
	data, ok := fk.argInfo[index][param]
	return f.info(data, ok, size, value, sizeRet)
}

func (f *fakeDriver) GetKernelWorkGroupInfo(kernel Kernel, device DeviceID, param KernelWorkGroupInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
	if s := f.record("GetKernelWorkGroupInfo(%s,%d)", param, size); s != Success {
		return s
	}
	fk, s := f.kernel(kernel)
	if s != Success {
		return s
	}
	data, ok := fk.groups[param]
	return f.info(data, ok, size, value, sizeRet)
}

func cstr(s string) []byte {
	return append([]byte(s), 0)
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	cpu.NativeEndian.PutUint32(b, v)
	return b
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	cpu.NativeEndian.PutUint64(b, v)
	return b
}

func sizeBytes(v uintptr) []byte {
	if cpu.PointerSize == 4 {
		return u32(uint32(v))
	}
	return u64(uint64(v))
}

func sizesBytes(vs ...uintptr) []byte {
	var b []byte
	for _, v := range vs {
		b = append(b, sizeBytes(v)...)
	}
	return b
}

func nv(name string, v Version) NameVersion {
	out := NameVersion{Version: v}
	copy(out.Name[:], name)
	return out
}

func nameVersions(vs ...NameVersion) []byte {
	if len(vs) == 0 {
		return nil
	}
	n := int(unsafe.Sizeof(vs[0])) * len(vs)
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), n)...)
}
