package css

import (
	"fmt"

	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// PxToDU converts CSS pixels to design units. A CSS pixel is 1/96 inch,
// i.e. 0.75 pt.
func PxToDU(px float32) dimen.DU {
	return dimen.DU(float64(px) * 0.75 * float64(dimen.PT))
}

// DimenFromValue interprets a resolved CSS value as a dimension.
// Lengths are converted to fixed dimensions, keywords auto, inherit and
// initial to their respective kinds. nil results in an unset dimension.
func DimenFromValue(v cssom.Value) (DimenT, error) {
	switch x := v.(type) {
	case nil:
		return DimenT{flags: dimenNone}, nil
	case cssom.Length:
		if x.Unit != cssom.Px {
			return DimenT{}, fmt.Errorf("unsupported unit %s", x.Unit)
		}
		return JustDimen(PxToDU(x.Value)), nil
	case cssom.Keyword:
		switch x {
		case "auto":
			return Auto(), nil
		case "inherit":
			return Inherit(), nil
		case "initial":
			return Initial(), nil
		}
		return DimenT{}, fmt.Errorf("not a dimension: %s", x)
	case cssom.ColorValue:
		return DimenT{}, fmt.Errorf("not a dimension: %s", x)
	}
	panic(fmt.Sprintf("css: unknown value type %T", v))
}

// IsUnset is true for dimensions without a value.
func (d DimenT) IsUnset() bool {
	return d.flags&kindMask == dimenNone
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
