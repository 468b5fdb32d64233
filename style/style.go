package style

// Effect is a bitmask of text rendering effects
type Effect uint16

const (
	EffectBold Effect = 1 << iota
	EffectItalic
	EffectUnderline
	EffectReverse
	EffectDim
	EffectBlink
	EffectStrikethrough
)

// Has returns true if all effects in e are set
func (f Effect) Has(e Effect) bool {
	return f&e == e
}

// Style bundles foreground, background, and effects for text rendering
// Zero value means "inherit": no colors set, no effects
type Style struct {
	Fg, Bg       RGB
	HasFg, HasBg bool
	Effects      Effect
}

// None returns the zero style
func None() Style {
	return Style{}
}

// Fg returns a style with only a foreground color
func Fg(c RGB) Style {
	return Style{Fg: c, HasFg: true}
}

// IsZero returns true if the style sets nothing
func (s Style) IsZero() bool {
	return !s.HasFg && !s.HasBg && s.Effects == 0
}

// AttrKind discriminates the Attr variants
type AttrKind uint8

const (
	AttrFg AttrKind = iota
	AttrBg
	AttrEffect
)

// Attr is a single style attribute: a foreground color, a background
// color, or an effect
type Attr struct {
	Kind   AttrKind
	Color  RGB
	Effect Effect
}

// FgAttr builds a foreground color attribute
func FgAttr(c RGB) Attr {
	return Attr{Kind: AttrFg, Color: c}
}

// BgAttr builds a background color attribute
func BgAttr(c RGB) Attr {
	return Attr{Kind: AttrBg, Color: c}
}

// EffectAttr builds an effect attribute
func EffectAttr(e Effect) Attr {
	return Attr{Kind: AttrEffect, Effect: e}
}

// With returns the style with the attribute applied
func (s Style) With(a Attr) Style {
	switch a.Kind {
	case AttrFg:
		s.Fg = a.Color
		s.HasFg = true
	case AttrBg:
		s.Bg = a.Color
		s.HasBg = true
	case AttrEffect:
		s.Effects |= a.Effect
	}
	return s
}

// Merge layers over on top of base: colors use last-writer-wins,
// effects accumulate as a union
func Merge(base, over Style) Style {
	out := base
	if over.HasFg {
		out.Fg = over.Fg
		out.HasFg = true
	}
	if over.HasBg {
		out.Bg = over.Bg
		out.HasBg = true
	}
	out.Effects |= over.Effects
	return out
}
