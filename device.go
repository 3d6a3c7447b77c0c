package cl3

import (
	"fmt"
	"unsafe"
)

// DeviceInfo selects a clGetDeviceInfo query. Only the selectors needed to
// identify a device are named; GetDeviceData accepts any code.
type DeviceInfo uint32

const (
	DeviceTypeInfo      DeviceInfo = 0x1000
	DeviceName          DeviceInfo = 0x102B
	DeviceVendor        DeviceInfo = 0x102C
	DeviceDriverVersion DeviceInfo = 0x102D
	DeviceVersion       DeviceInfo = 0x102F
)

var deviceInfoNames = map[DeviceInfo]string{
	DeviceTypeInfo:      "CL_DEVICE_TYPE",
	DeviceName:          "CL_DEVICE_NAME",
	DeviceVendor:        "CL_DEVICE_VENDOR",
	DeviceDriverVersion: "CL_DEVICE_DRIVER_VERSION",
	DeviceVersion:       "CL_DEVICE_VERSION",
}

// String returns the C name of the selector.
func (p DeviceInfo) String() string {
	if name, ok := deviceInfoNames[p]; ok {
		return name
	}
	return fmt.Sprintf("DeviceInfo(%#x)", uint32(p))
}

// GetDeviceIDs returns the devices of platform that match deviceType.
// A platform without matching devices yields an empty slice, not
// DeviceNotFound.
func GetDeviceIDs(platform PlatformID, deviceType DeviceType) ([]DeviceID, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}

	var count uint32
	status := d.GetDeviceIDs(platform, deviceType, 0, nil, &count)
	if status == DeviceNotFound {
		return []DeviceID{}, nil
	}
	if err := check(status); err != nil {
		return nil, err
	}
	if count == 0 {
		return []DeviceID{}, nil
	}

	ids := make([]DeviceID, count)
	if err := check(d.GetDeviceIDs(platform, deviceType, count, &ids[0], nil)); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetDeviceData returns the raw bytes of any device query.
func GetDeviceData(device DeviceID, param DeviceInfo) ([]byte, error) {
	d, err := current()
	if err != nil {
		return nil, err
	}
	return queryAll[byte](func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return d.GetDeviceInfo(device, param, size, value, sizeRet)
	})
}

// GetDeviceText returns a char[] device query as a string.
func GetDeviceText(device DeviceID, param DeviceInfo) (string, error) {
	b, err := GetDeviceData(device, param)
	if err != nil {
		return "", err
	}
	return trimNUL(b), nil
}
