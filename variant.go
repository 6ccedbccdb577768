package gdsave

import "fmt"

// A Type is the base type identifier of a serialized variant, the low
// 16 bits of the tag word that precedes every value on the wire.
type Type uint16

const (
	TypeNil Type = iota
	TypeBool
	TypeInt
	TypeReal
	TypeString
	TypeVector2
	TypeRect2
	TypeVector3
	TypeTransform2D
	TypePlane
	TypeQuat
	TypeAABB
	TypeBasis
	TypeTransform
	TypeColor
	TypeNodePath
	TypeRID
	TypeObject
	TypeDictionary
	TypeArray
	TypePoolByteArray
	TypePoolIntArray
	TypePoolRealArray
	TypePoolStringArray
	TypePoolVector2Array
	TypePoolVector3Array
	TypePoolColorArray
)

// flagWide is the only meaningful tag flag: bit 0 of the high 16 bits
// of the tag word. On Int it selects int64 over int32, on Real
// float64 over float32. All other flag bits are ignored on decode and
// never produced on encode.
const flagWide = 1 << 0

// splitTag splits a tag word into its base type and flag halves.
func splitTag(tag uint32) (Type, uint16) {
	return Type(tag & 0xFFFF), uint16(tag >> 16)
}

// joinTag combines a base type and flags into a tag word.
func joinTag(t Type, flags uint16) uint32 {
	return uint32(t) | uint32(flags)<<16
}

// Decodable reports whether the codec can decode a value of this base
// type into its plain Go representation. Geometric and engine
// resource types are recognized but decode to an opaque placeholder
// string instead.
func (t Type) Decodable() bool {
	switch t {
	case TypeNil, TypeBool, TypeInt, TypeReal, TypeString, TypeVector2, TypeDictionary, TypeArray:
		return true
	}
	return false
}

var typeNames = map[Type]string{
	TypeNil:              "Nil",
	TypeBool:             "Bool",
	TypeInt:              "Int",
	TypeReal:             "Real",
	TypeString:           "String",
	TypeVector2:          "Vector2",
	TypeRect2:            "Rect2",
	TypeVector3:          "Vector3",
	TypeTransform2D:      "Transform2D",
	TypePlane:            "Plane",
	TypeQuat:             "Quat",
	TypeAABB:             "AABB",
	TypeBasis:            "Basis",
	TypeTransform:        "Transform",
	TypeColor:            "Color",
	TypeNodePath:         "NodePath",
	TypeRID:              "RID",
	TypeObject:           "Object",
	TypeDictionary:       "Dictionary",
	TypeArray:            "Array",
	TypePoolByteArray:    "PoolByteArray",
	TypePoolIntArray:     "PoolIntArray",
	TypePoolRealArray:    "PoolRealArray",
	TypePoolStringArray:  "PoolStringArray",
	TypePoolVector2Array: "PoolVector2Array",
	TypePoolVector3Array: "PoolVector3Array",
	TypePoolColorArray:   "PoolColorArray",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}
