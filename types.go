package cl3

import (
	"bytes"
	"fmt"
)

// Opaque driver-owned handles. They are passed by value and never
// dereferenced by the binding.
type (
	PlatformID   uintptr
	DeviceID     uintptr
	Context      uintptr
	CommandQueue uintptr
	Program      uintptr
	Kernel       uintptr
	Mem          uintptr
	Event        uintptr
)

// Version is a packed cl_version: 10 bits major, 10 bits minor, 12 bits patch.
type Version uint32

const (
	versionMajorBits = 10
	versionMinorBits = 10
	versionPatchBits = 12

	versionMajorMask = 1<<versionMajorBits - 1
	versionMinorMask = 1<<versionMinorBits - 1
	versionPatchMask = 1<<versionPatchBits - 1
)

// MakeVersion packs a version triple the way CL_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) Version {
	return Version((major&versionMajorMask)<<(versionMinorBits+versionPatchBits) |
		(minor&versionMinorMask)<<versionPatchBits |
		patch&versionPatchMask)
}

// Major returns the major version number.
func (v Version) Major() uint32 { return uint32(v) >> (versionMinorBits + versionPatchBits) }

// Minor returns the minor version number.
func (v Version) Minor() uint32 { return (uint32(v) >> versionPatchBits) & versionMinorMask }

// Patch returns the patch version number.
func (v Version) Patch() uint32 { return uint32(v) & versionPatchMask }

// String formats v as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// NameVersionMaxNameSize is CL_NAME_VERSION_MAX_NAME_SIZE.
const NameVersionMaxNameSize = 64

// NameVersion mirrors cl_name_version byte for byte, so a driver can fill a
// []NameVersion directly.
type NameVersion struct {
	Version Version
	Name    [NameVersionMaxNameSize]byte
}

// NameString returns Name up to its first NUL byte.
func (nv NameVersion) NameString() string {
	name := nv.Name[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// String formats nv as name followed by its version.
func (nv NameVersion) String() string {
	return nv.NameString() + " " + nv.Version.String()
}

// DeviceType is a cl_device_type bitfield.
type DeviceType uint64

const (
	DeviceTypeDefault     DeviceType = 1 << 0
	DeviceTypeCPU         DeviceType = 1 << 1
	DeviceTypeGPU         DeviceType = 1 << 2
	DeviceTypeAccelerator DeviceType = 1 << 3
	DeviceTypeCustom      DeviceType = 1 << 4
	DeviceTypeAll         DeviceType = 0xFFFFFFFF
)

// MemFlags is a cl_mem_flags bitfield.
type MemFlags uint64

const (
	MemReadWrite    MemFlags = 1 << 0
	MemWriteOnly    MemFlags = 1 << 1
	MemReadOnly     MemFlags = 1 << 2
	MemUseHostPtr   MemFlags = 1 << 3
	MemAllocHostPtr MemFlags = 1 << 4
	MemCopyHostPtr  MemFlags = 1 << 5
)

// ContextProperties is one entry of a zero-terminated cl_context_properties
// list. Go int has the width of C intptr_t on every cgo target.
type ContextProperties int

// Context property keys.
const (
	ContextPlatform        ContextProperties = 0x1084
	ContextInteropUserSync ContextProperties = 0x1085
)

// Kernel argument address qualifiers (CL_KERNEL_ARG_ADDRESS_*).
const (
	KernelArgAddressGlobal   uint32 = 0x119B
	KernelArgAddressLocal    uint32 = 0x119C
	KernelArgAddressConstant uint32 = 0x119D
	KernelArgAddressPrivate  uint32 = 0x119E
)

// Kernel argument access qualifiers (CL_KERNEL_ARG_ACCESS_*).
const (
	KernelArgAccessReadOnly  uint32 = 0x11A0
	KernelArgAccessWriteOnly uint32 = 0x11A1
	KernelArgAccessReadWrite uint32 = 0x11A2
	KernelArgAccessNone      uint32 = 0x11A3
)

// Kernel argument type qualifier bits (CL_KERNEL_ARG_TYPE_*).
const (
	KernelArgTypeNone     uint64 = 0
	KernelArgTypeConst    uint64 = 1 << 0
	KernelArgTypeRestrict uint64 = 1 << 1
	KernelArgTypeVolatile uint64 = 1 << 2
	KernelArgTypePipe     uint64 = 1 << 3
)

// KernelExecInfo selects the information passed by SetKernelExecInfo.
type KernelExecInfo uint32

const (
	KernelExecInfoSVMPtrs            KernelExecInfo = 0x11B6
	KernelExecInfoSVMFineGrainSystem KernelExecInfo = 0x11B7
)
