// traits.go - Numerische Eigenschaften pro Elementtyp
//
// Dieses Modul enthaelt:
// - Field: die nachschlagbaren Eigenschaften (Null, Eins, Min, Max, ...)
// - Traits: kodierte Bitmuster aller Eigenschaften eines DTypes
// - Lookup/TraitsOf: Zugriff auf die beim Start berechnete Tabelle
//
// Die Tabelle wird aus den Deskriptoren des DType-Katalogs abgeleitet
// (Art, Bitbreite, Exponent-/Mantissenbreite), nicht aus einer Typliste.
package lowering

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/7blacky7/tensorlower/ml"
)

// Field selects one numeric trait of an element type.
type Field int

const (
	FieldZero Field = iota
	FieldOne
	FieldMin
	FieldMax
	FieldMinFinite
	FieldMaxFinite
	FieldEpsilon
	numFields
)

var fieldNames = [numFields]string{"zero", "one", "min", "max", "min_finite", "max_finite", "epsilon"}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "field(?)"
	}
	return fieldNames[f]
}

// Fields returns every trait field in table order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Traits holds the encoded scalar of every defined field of one DType.
// For floats Min and Max are the infinities; MinFinite and MaxFinite are
// the finite extrema.
type Traits struct {
	DType    ml.DType
	patterns [numFields][]byte
}

// Defined reports whether f has a value for this type.
func (t Traits) Defined(f Field) bool {
	return f >= 0 && f < numFields && t.patterns[f] != nil
}

// Lookup returns a copy of the little-endian encoding of f.
func (t Traits) Lookup(f Field) ([]byte, error) {
	if !t.Defined(f) {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s has no %s", t.DType, f)
	}
	return append([]byte(nil), t.patterns[f]...), nil
}

// Value returns f decoded.
func (t Traits) Value(f Field) (ml.Value, error) {
	b, err := t.Lookup(f)
	if err != nil {
		return ml.Value{}, err
	}
	return ml.Decode(t.DType, b), nil
}

var traitTable = buildTraitTable()

// TraitsOf returns the trait row of dtype.
func TraitsOf(dtype ml.DType) (Traits, error) {
	t, ok := traitTable[dtype]
	if !ok {
		return Traits{}, errors.Wrapf(ErrUnsupportedType, "no traits for %s", dtype)
	}
	return t, nil
}

// Lookup returns the encoded value of field f for dtype.
func Lookup(dtype ml.DType, f Field) ([]byte, error) {
	t, err := TraitsOf(dtype)
	if err != nil {
		return nil, err
	}
	return t.Lookup(f)
}

func buildTraitTable() map[ml.DType]Traits {
	table := make(map[ml.DType]Traits)
	for _, dtype := range ml.DTypes() {
		t := Traits{DType: dtype}
		switch dtype.Kind() {
		case ml.KindBool:
			t.set(FieldMin, ml.Value{Bool: false})
			t.set(FieldMinFinite, ml.Value{Bool: false})
			t.set(FieldMax, ml.Value{Bool: true})
			t.set(FieldMaxFinite, ml.Value{Bool: true})
		case ml.KindSigned:
			lo := int64(-1) << (dtype.BitSize() - 1)
			hi := ^lo
			t.set(FieldZero, ml.Value{Int: 0})
			t.set(FieldOne, ml.Value{Int: 1})
			t.set(FieldMin, ml.Value{Int: lo})
			t.set(FieldMinFinite, ml.Value{Int: lo})
			t.set(FieldMax, ml.Value{Int: hi})
			t.set(FieldMaxFinite, ml.Value{Int: hi})
		case ml.KindUnsigned:
			hi := ^uint64(0) >> (64 - dtype.BitSize())
			t.set(FieldZero, ml.Value{Uint: 0})
			t.set(FieldOne, ml.Value{Uint: 1})
			t.set(FieldMin, ml.Value{Uint: 0})
			t.set(FieldMinFinite, ml.Value{Uint: 0})
			t.set(FieldMax, ml.Value{Uint: hi})
			t.set(FieldMaxFinite, ml.Value{Uint: hi})
		case ml.KindFloat:
			setFloatTraits(&t)
		case ml.KindComplex:
			t.set(FieldZero, ml.Value{Complex: 0})
			t.set(FieldOne, ml.Value{Complex: 1})
		}
		table[dtype] = t
	}
	return table
}

func (t *Traits) set(f Field, v ml.Value) {
	t.patterns[f] = ml.Encode(t.DType, v)
}

// setFloatTraits leitet alle Bitmuster aus Exponent- und Mantissenbreite ab
func setFloatTraits(t *Traits) {
	exp, man, _ := t.DType.FloatFormat()
	bias := uint64(1)<<(exp-1) - 1
	allOnes := uint64(1)<<exp - 1
	sign := uint64(1) << (exp + man)
	fraction := uint64(1)<<man - 1

	pattern := func(bits uint64) []byte {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, bits)
		return b[:t.DType.Size()]
	}

	inf := allOnes << man
	maxFinite := (allOnes-1)<<man | fraction

	t.patterns[FieldZero] = pattern(0)
	t.patterns[FieldOne] = pattern(bias << man)
	t.patterns[FieldMin] = pattern(sign | inf)
	t.patterns[FieldMax] = pattern(inf)
	t.patterns[FieldMinFinite] = pattern(sign | maxFinite)
	t.patterns[FieldMaxFinite] = pattern(maxFinite)
	t.patterns[FieldEpsilon] = pattern((bias - uint64(man)) << man)
}
