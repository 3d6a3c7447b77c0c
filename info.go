package cl3

import (
	"fmt"
	"strings"
)

// InfoKind tags the payload held by an InfoType.
type InfoKind uint8

const (
	// KindBytes holds a char[] result, usually NUL-terminated text.
	KindBytes InfoKind = iota
	// KindInt holds a cl_int.
	KindInt
	// KindUint holds a cl_uint.
	KindUint
	// KindUlong holds a cl_ulong.
	KindUlong
	// KindSize holds a size_t.
	KindSize
	// KindPtr holds an intptr_t, typically another object's handle.
	KindPtr
	// KindSizes holds a size_t[].
	KindSizes
	// KindNameVersions holds a cl_name_version[].
	KindNameVersions
)

var kindNames = [...]string{
	KindBytes:        "bytes",
	KindInt:          "int",
	KindUint:         "uint",
	KindUlong:        "ulong",
	KindSize:         "size",
	KindPtr:          "ptr",
	KindSizes:        "sizes",
	KindNameVersions: "name-versions",
}

// String returns the lower-case kind name.
func (k InfoKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("InfoKind(%d)", uint8(k))
}

// InfoType is the result of a property query. The kind is fixed by the
// query selector; the accessors fail with ErrInfoKind on any other kind.
type InfoType struct {
	kind   InfoKind
	bytes  []byte
	scalar uint64
	sizes  []uintptr
	names  []NameVersion
}

// Query functions build their results with the New*Info constructors. They
// are exported so callers can fake results in tests.

// NewBytesInfo returns a KindBytes value holding b.
func NewBytesInfo(b []byte) InfoType { return InfoType{kind: KindBytes, bytes: b} }

// NewIntInfo returns a KindInt value.
func NewIntInfo(v int32) InfoType { return InfoType{kind: KindInt, scalar: uint64(uint32(v))} }

// NewUintInfo returns a KindUint value.
func NewUintInfo(v uint32) InfoType { return InfoType{kind: KindUint, scalar: uint64(v)} }

// NewUlongInfo returns a KindUlong value.
func NewUlongInfo(v uint64) InfoType { return InfoType{kind: KindUlong, scalar: v} }

// NewSizeInfo returns a KindSize value.
func NewSizeInfo(v uintptr) InfoType { return InfoType{kind: KindSize, scalar: uint64(v)} }

// NewPtrInfo returns a KindPtr value.
func NewPtrInfo(v uintptr) InfoType { return InfoType{kind: KindPtr, scalar: uint64(v)} }

// NewSizesInfo returns a KindSizes value holding v.
func NewSizesInfo(v []uintptr) InfoType { return InfoType{kind: KindSizes, sizes: v} }

// NewNameVersionsInfo returns a KindNameVersions value holding v.
func NewNameVersionsInfo(v []NameVersion) InfoType { return InfoType{kind: KindNameVersions, names: v} }

// Kind reports which payload the value holds.
func (v InfoType) Kind() InfoKind {
	return v.kind
}

func (v InfoType) want(k InfoKind) error {
	if v.kind != k {
		return fmt.Errorf("%w: have %s, want %s", ErrInfoKind, v.kind, k)
	}
	return nil
}

// Bytes returns the raw bytes exactly as the driver wrote them.
func (v InfoType) Bytes() ([]byte, error) {
	if err := v.want(KindBytes); err != nil {
		return nil, err
	}
	return v.bytes, nil
}

// Text returns the bytes as a string without the trailing NUL terminator.
func (v InfoType) Text() (string, error) {
	if err := v.want(KindBytes); err != nil {
		return "", err
	}
	return trimNUL(v.bytes), nil
}

// Int returns a cl_int result.
func (v InfoType) Int() (int32, error) {
	if err := v.want(KindInt); err != nil {
		return 0, err
	}
	return int32(uint32(v.scalar)), nil
}

// Uint returns a cl_uint result.
func (v InfoType) Uint() (uint32, error) {
	if err := v.want(KindUint); err != nil {
		return 0, err
	}
	return uint32(v.scalar), nil
}

// Ulong returns a cl_ulong result.
func (v InfoType) Ulong() (uint64, error) {
	if err := v.want(KindUlong); err != nil {
		return 0, err
	}
	return v.scalar, nil
}

// Size returns a size_t result.
func (v InfoType) Size() (uintptr, error) {
	if err := v.want(KindSize); err != nil {
		return 0, err
	}
	return uintptr(v.scalar), nil
}

// Ptr returns an intptr_t result, usually an object handle.
func (v InfoType) Ptr() (uintptr, error) {
	if err := v.want(KindPtr); err != nil {
		return 0, err
	}
	return uintptr(v.scalar), nil
}

// Sizes returns a size_t[] result, one entry per dimension.
func (v InfoType) Sizes() ([]uintptr, error) {
	if err := v.want(KindSizes); err != nil {
		return nil, err
	}
	return v.sizes, nil
}

// NameVersions returns a cl_name_version[] result.
func (v InfoType) NameVersions() ([]NameVersion, error) {
	if err := v.want(KindNameVersions); err != nil {
		return nil, err
	}
	return v.names, nil
}

// String formats the payload for display whatever its kind.
func (v InfoType) String() string {
	switch v.kind {
	case KindBytes:
		return trimNUL(v.bytes)
	case KindInt:
		return fmt.Sprint(int32(uint32(v.scalar)))
	case KindUint, KindUlong, KindSize:
		return fmt.Sprint(v.scalar)
	case KindPtr:
		return fmt.Sprintf("%#x", v.scalar)
	case KindSizes:
		return fmt.Sprint(v.sizes)
	case KindNameVersions:
		parts := make([]string, len(v.names))
		for i, nv := range v.names {
			parts[i] = nv.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// trimNUL drops the NUL terminator that OpenCL appends to every char[]
// result. Interior bytes are kept so nothing is truncated.
func trimNUL(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
