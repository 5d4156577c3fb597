package accum

import "image/color"

// PackedColor stores an 8-bit per channel color in a single 32-bit word
// laid out as alpha:blue:green:red, with alpha in the most significant byte.
type PackedColor uint32

// OpaqueAlpha is the alpha byte written by the accumulator.
const OpaqueAlpha = 0xFF

// Pack channels into a color word with an opaque alpha channel.
func Pack(r, g, b uint8) PackedColor {
	return PackRGBA(r, g, b, OpaqueAlpha)
}

// Pack channels into a color word.
func PackRGBA(r, g, b, a uint8) PackedColor {
	return PackedColor(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func (c PackedColor) R() uint8 { return uint8(c) }
func (c PackedColor) G() uint8 { return uint8(c >> 8) }
func (c PackedColor) B() uint8 { return uint8(c >> 16) }
func (c PackedColor) A() uint8 { return uint8(c >> 24) }

// RGBA implements color.Color.
func (c PackedColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}
