// Package cpu reports the host ABI facts the binding needs to reinterpret
// bytes written by the native driver.
package cpu

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// NativeEndian is the byte order the driver uses when it writes scalar
// query results into a caller buffer.
var NativeEndian binary.ByteOrder = hostByteOrder()

// PointerSize is the width in bytes of size_t, intptr_t and handle values.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

func hostByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
