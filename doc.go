// Package mctext models Minecraft rich text.
//
// # Overview
//
// A Document is an ordered list of Spans, each a run of text with one
// TextColor and one Style. Documents are built with a Builder or decoded from
// one of the two formats the game uses:
//
//   - Legacy text, where "§" followed by a code character switches color or
//     turns a style toggle on (ParseLegacy, Document.ToLegacy).
//   - JSON text components, a tree of nested objects whose children inherit
//     the color and style of their parent (ParseJSON, Document.ToJSON).
//
// # Quick Start
//
//	doc := mctext.ParseLegacy("§cHello §lworld")
//	fmt.Println(doc.PlainText()) // Hello world
//	fmt.Println(doc.ToJSON())
//
//	doc = mctext.NewBuilder().
//	    Span("Hello ").ColorNamed(mctext.Gold).
//	    Then("world").Bold().
//	    Build()
//
// # Rendering
//
// Layout and rasterization live in the text subpackage, which loads fonts
// through a FontSystem and composites glyphs into an image.RGBA:
//
//	fs, err := text.NewFontSystem(mctext.VersionModern)
//	res := text.Render(fs, doc, 256, 64, text.NewLayoutOptions(16).WithShadow(true))
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive diagnostics
// from this package and from text.
package mctext
