// Package text lays out and rasterizes mctext documents.
//
// The rendering pipeline follows a separation of concerns:
//
//   - FontSystem: heavyweight, shared set of fonts for one FontVersion
//   - LayoutEngine: word wrap, baselines and alignment from font metrics
//   - RenderContext: paints a layout through a TextRenderer
//   - SoftwareRenderer: composites glyph coverage into an *image.RGBA
//   - FontParser: pluggable font engine (default: golang.org/x/image)
//
// Every Font caches rasterized glyphs per (rune, size); see
// WithGlyphCacheSize.
//
// # Example usage
//
//	// Load fonts (do once, share across application)
//	fs, err := text.NewFontSystem(mctext.VersionModern)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc := mctext.ParseLegacy("§6Gold §lbold")
//	opts := text.NewLayoutOptions(16).WithShadow(true).WithMaxWidth(200)
//
//	r := text.NewSoftwareRenderer(256, 64)
//	text.NewRenderContext(fs).Render(r, doc, 4, 4, opts)
//	png.Encode(f, r.Image())
//
// # Fonts
//
// DefaultAssets substitutes the Go font family for the game fonts, which
// are not redistributable. Point WithAssetsFromDir at a directory holding
// the real files to render with them.
//
// # Pluggable Engine Backend
//
// Font decoding and glyph rasterization are abstracted through the
// FontParser interface. Two engines are registered: "ximage"
// (golang.org/x/image/font/opentype, the default) and "gotext"
// (github.com/go-text/typesetting outlines filled by
// golang.org/x/image/vector). Custom engines can be registered:
//
//	text.RegisterParser("myengine", myParser)
//	fs, err := text.NewFontSystem(mctext.VersionModern, text.WithEngine("myengine"))
package text
