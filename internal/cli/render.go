package cli

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/mctext"
	"github.com/gogpu/mctext/text"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string       // PNG path, "-" for stdout
	from   string       // input format
	render RenderConfig // flag values, merged over the config file
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render rich text to a PNG image",
		Long: `Render lays out rich text with the Minecraft fonts and writes a PNG.
The text is read from the argument, or from stdin when it is absent or "-".
Without --width/--height the image is sized to fit the text.`,
		Example: `  mctext render '§6Gold §lbold' -o gold.png
  mctext render --from json '{"text":"hi","color":"red"}' -o hi.png --size 32`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := parseDocument(input, opts.from)
			if err != nil {
				return err
			}
			cfg, err := c.renderConfig(cmd, opts.render)
			if err != nil {
				return err
			}
			fs, err := cfg.fontSystem()
			if err != nil {
				return err
			}

			img, l := renderImage(fs, doc, cfg)
			if err := writePNG(cmd.OutOrStdout(), opts.output, img); err != nil {
				return err
			}
			c.Logger.Info("Rendered",
				"output", opts.output,
				"size", fmt.Sprintf("%dx%d", img.Rect.Dx(), img.Rect.Dy()),
				"lines", len(l.Lines))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "mctext.png", `output PNG file ("-" for stdout)`)
	cmd.Flags().StringVar(&opts.from, "from", formatAuto, "input format: auto, legacy, json or plain")
	opts.render.bindFlags(cmd)

	return cmd
}

// renderImage lays out doc and paints it onto a new image, sized to fit the
// text block unless the config fixes the dimensions.
func renderImage(fs *text.FontSystem, doc mctext.Document, cfg RenderConfig) (*image.RGBA, *text.TextLayout) {
	opts := cfg.layoutOptions()
	rc := text.NewRenderContext(fs)
	l := rc.Layout(doc, opts)

	extra := 2 * cfg.Padding
	if cfg.Shadow {
		extra += mctext.ShadowOffset
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		// Aligned lines are offset within MaxWidth.
		w = int(math.Ceil(max(l.Width, cfg.MaxWidth))) + extra
	}
	if h == 0 {
		h = int(math.Ceil(l.Height)) + extra
	}

	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if bg, ok := mctext.ParseColor(cfg.Background); ok {
		draw.Draw(img, img.Rect, image.NewUniform(bg.Color()), image.Point{}, draw.Src)
	}
	pad := float64(cfg.Padding)
	rc.RenderLayout(text.NewSoftwareRendererFor(img), doc, l, pad, pad, opts)
	return img, l
}

// writePNG encodes img to path, or to stdout when path is "-".
func writePNG(stdout io.Writer, path string, img image.Image) error {
	if path == "-" {
		return png.Encode(stdout, img)
	}
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
