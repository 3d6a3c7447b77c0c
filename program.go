package cl3

import (
	"fmt"
	"unsafe"
)

// ProgramBuildInfo selects a clGetProgramBuildInfo query.
type ProgramBuildInfo uint32

const (
	ProgramBuildStatus                  ProgramBuildInfo = 0x1181
	ProgramBuildOptions                 ProgramBuildInfo = 0x1182
	ProgramBuildLog                     ProgramBuildInfo = 0x1183
	ProgramBinaryType                   ProgramBuildInfo = 0x1184 // OpenCL 1.2
	ProgramBuildGlobalVariableTotalSize ProgramBuildInfo = 0x1185 // OpenCL 2.0
)

var programBuildInfoTable = map[ProgramBuildInfo]selectorEntry{
	ProgramBuildStatus:                  {"CL_PROGRAM_BUILD_STATUS", KindInt},
	ProgramBuildOptions:                 {"CL_PROGRAM_BUILD_OPTIONS", KindBytes},
	ProgramBuildLog:                     {"CL_PROGRAM_BUILD_LOG", KindBytes},
	ProgramBinaryType:                   {"CL_PROGRAM_BINARY_TYPE", KindUint},
	ProgramBuildGlobalVariableTotalSize: {"CL_PROGRAM_BUILD_GLOBAL_VARIABLE_TOTAL_SIZE", KindSize},
}

// Kind reports the result kind of the selector and whether it is known.
func (p ProgramBuildInfo) Kind() (InfoKind, bool) {
	e, ok := programBuildInfoTable[p]
	return e.kind, ok
}

// String returns the C name of the selector.
func (p ProgramBuildInfo) String() string {
	if e, ok := programBuildInfoTable[p]; ok {
		return e.name
	}
	return fmt.Sprintf("ProgramBuildInfo(%#x)", uint32(p))
}

// Build status values reported by ProgramBuildStatus.
const (
	BuildSuccess    int32 = 0
	BuildNone       int32 = -1
	BuildError      int32 = -2
	BuildInProgress int32 = -3
)

// CreateProgramWithSource creates a program from OpenCL C source strings.
func CreateProgramWithSource(ctx Context, sources ...string) (Program, error) {
	d, err := current()
	if err != nil {
		return 0, err
	}
	if len(sources) == 0 {
		return 0, InvalidValue
	}
	status := InvalidValue
	program := d.CreateProgramWithSource(ctx, sources, &status)
	if err := check(status); err != nil {
		return 0, err
	}
	return program, nil
}

// BuildProgram compiles and links program for devices, or for every device
// of its context when devices is empty. The build runs synchronously; a
// BuildProgramFailure leaves the details in ProgramBuildLog.
func BuildProgram(program Program, devices []DeviceID, options string) error {
	d, err := current()
	if err != nil {
		return err
	}
	var first *DeviceID
	if len(devices) > 0 {
		first = &devices[0]
	}
	return check(d.BuildProgram(program, uint32(len(devices)), first, options))
}

// GetProgramBuildInfo runs a build query of program on device.
func GetProgramBuildInfo(program Program, device DeviceID, param ProgramBuildInfo) (InfoType, error) {
	kind, ok := param.Kind()
	if !ok {
		return InfoType{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	d, err := current()
	if err != nil {
		return InfoType{}, err
	}
	return queryInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetProgramBuildInfo(program, device, param, size, value, sizeRet)
	}, kind)
}

// BuildLog returns the build log of program on device as text.
func BuildLog(program Program, device DeviceID) (string, error) {
	v, err := GetProgramBuildInfo(program, device, ProgramBuildLog)
	if err != nil {
		return "", err
	}
	return v.Text()
}

// RetainProgram increments the program reference count.
func RetainProgram(program Program) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.RetainProgram(program))
}

// ReleaseProgram decrements the program reference count.
func ReleaseProgram(program Program) error {
	d, err := current()
	if err != nil {
		return err
	}
	return check(d.ReleaseProgram(program))
}
