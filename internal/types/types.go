package types

import (
	"fmt"
	"sort"
)

// Primitive enumerates the built-in type names understood by every stage.
type Primitive uint8

const (
	Invalid Primitive = iota
	Int
	Double
	Float
	Boolean
	Char
	Long
	Byte
	Short
	String
)

// FamilyMask describes broad categories a primitive belongs to.
type FamilyMask uint8

const (
	FamilyNone     FamilyMask = 0
	FamilyIntegral FamilyMask = 1 << iota
	FamilyFloat
	FamilyBool
	FamilyText
)

const (
	FamilyNumeric = FamilyIntegral | FamilyFloat
)

type primitiveInfo struct {
	name   string
	family FamilyMask
}

// порядок совпадает с константами Primitive
var primitives = [...]primitiveInfo{
	Invalid: {name: "invalid", family: FamilyNone},
	Int:     {name: "int", family: FamilyIntegral},
	Double:  {name: "double", family: FamilyFloat},
	Float:   {name: "float", family: FamilyFloat},
	Boolean: {name: "boolean", family: FamilyBool},
	Char:    {name: "char", family: FamilyIntegral},
	Long:    {name: "long", family: FamilyIntegral},
	Byte:    {name: "byte", family: FamilyIntegral},
	Short:   {name: "short", family: FamilyIntegral},
	String:  {name: "String", family: FamilyText},
}

var byName = func() map[string]Primitive {
	m := make(map[string]Primitive, len(primitives)-1)
	for p := Int; int(p) < len(primitives); p++ {
		m[primitives[p].name] = p
	}
	return m
}()

func (p Primitive) String() string {
	if int(p) < len(primitives) {
		return primitives[p].name
	}
	return fmt.Sprintf("Primitive(%d)", p)
}

// Family returns the family mask of the primitive.
func (p Primitive) Family() FamilyMask {
	if int(p) < len(primitives) {
		return primitives[p].family
	}
	return FamilyNone
}

// Valid reports whether p names a real primitive.
func (p Primitive) Valid() bool { return p != Invalid && int(p) < len(primitives) }

// IsIntegral covers every integer width plus char.
func (p Primitive) IsIntegral() bool { return p.Family()&FamilyIntegral != 0 }

// IsFloating covers float and double.
func (p Primitive) IsFloating() bool { return p.Family()&FamilyFloat != 0 }

// IsNumeric is IsIntegral || IsFloating.
func (p Primitive) IsNumeric() bool { return p.Family()&FamilyNumeric != 0 }

// Lookup resolves a type name. Names are case-sensitive: "string" is not String.
func Lookup(name string) (Primitive, bool) {
	p, ok := byName[name]
	return p, ok
}

// IsPrimitive reports whether name is one of the built-in type names.
func IsPrimitive(name string) bool {
	_, ok := byName[name]
	return ok
}

// IsIntegral reports whether name is an integral primitive (including char).
func IsIntegral(name string) bool {
	p, ok := byName[name]
	return ok && p.IsIntegral()
}

// IsFloating reports whether name is float or double.
func IsFloating(name string) bool {
	p, ok := byName[name]
	return ok && p.IsFloating()
}

// IsNumeric reports whether name is integral or floating.
func IsNumeric(name string) bool {
	p, ok := byName[name]
	return ok && p.IsNumeric()
}

// Names returns all primitive names sorted longest first, which is the order
// regex alternations need to avoid matching a prefix ("int" inside "integer").
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
