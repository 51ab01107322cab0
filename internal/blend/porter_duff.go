// Package blend implements the Porter-Duff source-over operator used to
// composite glyph coverage into an RGBA buffer.
//
// All blend operations work with premultiplied alpha values in the range
// 0-255, the layout of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites a premultiplied source over a premultiplied
// destination.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := inv255(sa)
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// Premultiply scales an opaque color by coverage, giving the premultiplied
// source for one pixel of a glyph mask.
func Premultiply(r, g, b, coverage byte) (byte, byte, byte, byte) {
	return mulDiv255(r, coverage), mulDiv255(g, coverage), mulDiv255(b, coverage), coverage
}

// MaskOver composites an opaque color at the given coverage over the
// premultiplied pixel px, which must hold at least four bytes (R, G, B, A).
//
// Per color channel this is dst*(1-a) + src*a with a = coverage/255, and
// the alpha channel follows source-over, so a pixel covered fully becomes
// opaque and a transparent pixel takes on the coverage as its alpha.
func MaskOver(px []byte, r, g, b, coverage byte) {
	if coverage == 0 {
		return
	}
	_ = px[3]
	sr, sg, sb, sa := Premultiply(r, g, b, coverage)
	px[0], px[1], px[2], px[3] = SourceOver(sr, sg, sb, sa, px[0], px[1], px[2], px[3])
}
