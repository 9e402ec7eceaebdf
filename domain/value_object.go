package domain

import (
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hash fold parameters. Changing them changes every stored or transmitted
// hash, so they are part of the contract.
const (
	hashSeed       int32 = 1
	hashMultiplier int32 = 23
	mapKeyFactor   int32 = 31
)

// ValueObject is a descriptive type with no identity. Two value objects are
// equal when they have the same concrete type and their equality components
// are equal element by element, in order.
type ValueObject interface {
	// EqualityComponents returns the attributes that take part in equality.
	// The order is part of the type's contract.
	EqualityComponents() []any
}

// Equatable is the method-set form of the value object contract. Concrete
// types implement it by delegating to Equal and Hash so that the two halves
// are always provided together.
type Equatable interface {
	ValueObject
	Equals(other ValueObject) bool
	HashCode() int32
}

// Hasher lets a component supply its own hash. A component implementing it
// must keep the hash consistent with reflect.DeepEqual on that component.
type Hasher interface {
	HashCode() int32
}

// Equal reports whether a and b are equal value objects. Two nil values are
// equal, a nil and a non-nil value are not, and values of different concrete
// types are never equal, even when their components match.
func Equal(a, b ValueObject) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if samePointer(a, b) {
		return true
	}

	ac, bc := a.EqualityComponents(), b.EqualityComponents()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !componentsEqual(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Hash folds the equality components of v left to right, starting from 1 and
// computing acc*23 + hash(component) with int32 wraparound. Equal value
// objects always produce equal hashes. A nil value hashes to 0.
func Hash(v ValueObject) int32 {
	if isNil(v) {
		return 0
	}
	acc := hashSeed
	for _, c := range v.EqualityComponents() {
		acc = acc*hashMultiplier + hashComponent(c)
	}
	return acc
}

func componentsEqual(a, b any) bool {
	if av, ok := a.(ValueObject); ok {
		bv, ok := b.(ValueObject)
		if !ok {
			return false
		}
		return Equal(av, bv)
	}
	return reflect.DeepEqual(a, b)
}

func hashComponent(c any) int32 {
	switch v := c.(type) {
	case nil:
		return 0
	case string:
		return foldUint64(xxhash.Sum64String(v))
	case []byte:
		return foldUint64(xxhash.Sum64(v))
	}
	return hashValue(reflect.ValueOf(c))
}

// hashValue walks a component reflectively. Cyclic data is not supported.
func hashValue(rv reflect.Value) int32 {
	if !rv.IsValid() {
		return 0
	}
	if rv.CanInterface() {
		switch v := rv.Interface().(type) {
		case ValueObject:
			if rv.Kind() != reflect.Pointer || !rv.IsNil() {
				return Hash(v)
			}
		case Hasher:
			if rv.Kind() != reflect.Pointer || !rv.IsNil() {
				return v.HashCode()
			}
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return foldUint64(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return foldUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return hashFloat(real(c))*hashMultiplier + hashFloat(imag(c))
	case reflect.String:
		return foldUint64(xxhash.Sum64String(rv.String()))
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return 0
		}
		acc := hashSeed
		for i := range rv.Len() {
			acc = acc*hashMultiplier + hashValue(rv.Index(i))
		}
		return acc
	case reflect.Struct:
		acc := hashSeed
		for i := range rv.NumField() {
			acc = acc*hashMultiplier + hashValue(rv.Field(i))
		}
		return acc
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return hashValue(rv.Elem())
	case reflect.Map:
		if rv.IsNil() {
			return 0
		}
		// Summing keeps the result independent of iteration order.
		var acc int32
		iter := rv.MapRange()
		for iter.Next() {
			acc += hashValue(iter.Key())*mapKeyFactor ^ hashValue(iter.Value())
		}
		return acc
	default:
		// Funcs, channels and unsafe pointers only compare equal when both are
		// nil or identical, so a constant keeps hashes consistent.
		return 0
	}
}

func hashFloat(f float64) int32 {
	if f == 0 {
		// -0 == +0 under DeepEqual.
		f = 0
	}
	return foldUint64(math.Float64bits(f))
}

func foldUint64(u uint64) int32 {
	return int32(uint32(u) ^ uint32(u>>32))
}

// isNil reports whether v is nil or a typed nil pointer, map, or slice.
func isNil(v ValueObject) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func samePointer(a, b ValueObject) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	return ra.Kind() == reflect.Pointer && ra.Pointer() == rb.Pointer()
}
