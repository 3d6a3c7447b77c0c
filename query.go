package cl3

import (
	"unsafe"

	"github.com/cwbudde/cl3/internal/cpu"
)

// infoFunc performs one native clGet*Info call for a fixed object and
// selector. A nil value asks only for the size of the result.
type infoFunc func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

// selectorEntry binds a query selector to its C name and result kind.
type selectorEntry struct {
	name string
	kind InfoKind
}

type scalar interface {
	~int32 | ~uint32 | ~uint64 | ~uintptr
}

// querySize asks the driver how many bytes the result needs.
func querySize(fn infoFunc) (uintptr, error) {
	var size uintptr
	if err := check(fn(0, nil, &size)); err != nil {
		return 0, err
	}
	return size, nil
}

// queryVector fills a []T from a result of size bytes. A zero size yields
// an empty slice without calling the driver.
func queryVector[T any](fn infoFunc, size uintptr) ([]T, error) {
	if size == 0 {
		return []T{}, nil
	}
	var zero T
	elem := unsafe.Sizeof(zero)
	data := make([]T, (size+elem-1)/elem)
	if err := check(fn(size, unsafe.Pointer(&data[0]), nil)); err != nil {
		return nil, err
	}
	return data, nil
}

// queryAll runs the size-then-fill protocol. The fill call is only made
// once the size call has succeeded.
func queryAll[T any](fn infoFunc) ([]T, error) {
	size, err := querySize(fn)
	if err != nil {
		return nil, err
	}
	return queryVector[T](fn, size)
}

// queryScalar reads a fixed-width result with a single call.
func queryScalar[T scalar](fn infoFunc) (T, error) {
	var zero T
	raw := make([]byte, unsafe.Sizeof(zero))
	if err := check(fn(uintptr(len(raw)), unsafe.Pointer(&raw[0]), nil)); err != nil {
		return zero, err
	}
	return decodeScalar[T](raw), nil
}

// decodeScalar interprets raw in host byte order. len(raw) must be the
// width of T.
func decodeScalar[T scalar](raw []byte) T {
	switch len(raw) {
	case 4:
		return T(cpu.NativeEndian.Uint32(raw))
	case 8:
		return T(cpu.NativeEndian.Uint64(raw))
	default:
		panic("cl3: unsupported scalar width")
	}
}

// queryInfo applies the contract that belongs to kind and tags the result.
func queryInfo(fn infoFunc, kind InfoKind) (InfoType, error) {
	switch kind {
	case KindBytes:
		b, err := queryAll[byte](fn)
		if err != nil {
			return InfoType{}, err
		}
		return NewBytesInfo(b), nil
	case KindInt:
		v, err := queryScalar[int32](fn)
		if err != nil {
			return InfoType{}, err
		}
		return NewIntInfo(v), nil
	case KindUint:
		v, err := queryScalar[uint32](fn)
		if err != nil {
			return InfoType{}, err
		}
		return NewUintInfo(v), nil
	case KindUlong:
		v, err := queryScalar[uint64](fn)
		if err != nil {
			return InfoType{}, err
		}
		return NewUlongInfo(v), nil
	case KindSize, KindPtr:
		v, err := queryScalar[uintptr](fn)
		if err != nil {
			return InfoType{}, err
		}
		if kind == KindPtr {
			return NewPtrInfo(v), nil
		}
		return NewSizeInfo(v), nil
	case KindSizes:
		v, err := queryAll[uintptr](fn)
		if err != nil {
			return InfoType{}, err
		}
		return NewSizesInfo(v), nil
	case KindNameVersions:
		v, err := queryAll[NameVersion](fn)
		if err != nil {
			return InfoType{}, err
		}
		return NewNameVersionsInfo(v), nil
	default:
		return InfoType{}, ErrUnknownParam
	}
}
