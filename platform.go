package cl3

import (
	"fmt"
	"unsafe"
)

// PlatformInfo selects a clGetPlatformInfo query.
type PlatformInfo uint32

const (
	PlatformProfile               PlatformInfo = 0x0900
	PlatformVersion               PlatformInfo = 0x0901
	PlatformName                  PlatformInfo = 0x0902
	PlatformVendor                PlatformInfo = 0x0903
	PlatformExtensions            PlatformInfo = 0x0904
	PlatformHostTimerResolution   PlatformInfo = 0x0905 // OpenCL 2.1
	PlatformNumericVersion        PlatformInfo = 0x0906 // OpenCL 3.0
	PlatformExtensionsWithVersion PlatformInfo = 0x0907 // OpenCL 3.0
)

var platformInfoTable = map[PlatformInfo]selectorEntry{
	PlatformProfile:               {"CL_PLATFORM_PROFILE", KindBytes},
	PlatformVersion:               {"CL_PLATFORM_VERSION", KindBytes},
	PlatformName:                  {"CL_PLATFORM_NAME", KindBytes},
	PlatformVendor:                {"CL_PLATFORM_VENDOR", KindBytes},
	PlatformExtensions:            {"CL_PLATFORM_EXTENSIONS", KindBytes},
	PlatformHostTimerResolution:   {"CL_PLATFORM_HOST_TIMER_RESOLUTION", KindUlong},
	PlatformNumericVersion:        {"CL_PLATFORM_NUMERIC_VERSION", KindUint},
	PlatformExtensionsWithVersion: {"CL_PLATFORM_EXTENSIONS_WITH_VERSION", KindNameVersions},
}

// PlatformInfos lists every platform selector in code order.
var PlatformInfos = []PlatformInfo{
	PlatformProfile,
	PlatformVersion,
	PlatformName,
	PlatformVendor,
	PlatformExtensions,
	PlatformHostTimerResolution,
	PlatformNumericVersion,
	PlatformExtensionsWithVersion,
}

// Kind reports the result kind of the selector.
func (p PlatformInfo) Kind() (InfoKind, bool) {
	e, ok := platformInfoTable[p]
	return e.kind, ok
}

// String returns the C name of the selector.
func (p PlatformInfo) String() string {
	if e, ok := platformInfoTable[p]; ok {
		return e.name
	}
	return fmt.Sprintf("PlatformInfo(%#x)", uint32(p))
}

// GetPlatformIDs returns the installed platforms. The driver is asked for
// the count first; a count of zero yields an empty slice.
func GetPlatformIDs() ([]PlatformID, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}

	var count uint32
	if err := check(d.GetPlatformIDs(0, nil, &count)); err != nil {
		return nil, err
	}
	if count == 0 {
		return []PlatformID{}, nil
	}

	ids := make([]PlatformID, count)
	if err := check(d.GetPlatformIDs(count, &ids[0], nil)); err != nil {
		return nil, err
	}
	return ids, nil
}

func platformInfoFunc(d driver, platform PlatformID, param PlatformInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetPlatformInfo(platform, param, size, value, sizeRet)
	}
}

// GetPlatformData returns the raw bytes of any platform query.
func GetPlatformData(platform PlatformID, param PlatformInfo) ([]byte, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}
	return queryAll[byte](platformInfoFunc(d, platform, param))
}

// GetPlatformInfo runs a platform query and decodes it according to the
// selector.
func GetPlatformInfo(platform PlatformID, param PlatformInfo) (InfoType, error) {
	kind, ok := param.Kind()
	if !ok {
		return InfoType{}, fmt.Errorf("%w: %s", ErrUnknownParam, param)
	}
	d, err := current()
	if err != nil {
		return InfoType{}, err
	}
	return queryInfo(platformInfoFunc(d, platform, param), kind)
}
