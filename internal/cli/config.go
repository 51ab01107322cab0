package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gogpu/mctext"
	"github.com/gogpu/mctext/text"
)

// Config is the TOML configuration file.
//
//	[render]
//	size = 24
//	shadow = true
//	background = "#202020"
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig holds the defaults of the render and measure commands.
type RenderConfig struct {
	Size        float64 `toml:"size"`         // font size in pixels
	Width       int     `toml:"width"`        // image width, 0 fits the text
	Height      int     `toml:"height"`       // image height, 0 fits the text
	Padding     int     `toml:"padding"`      // margin around the text block
	Shadow      bool    `toml:"shadow"`       // draw the drop shadow
	Align       string  `toml:"align"`        // left, center or right
	MaxWidth    float64 `toml:"max_width"`    // wrap width, 0 disables wrapping
	LineSpacing float64 `toml:"line_spacing"` // baseline distance, 0 uses the font's
	Background  string  `toml:"background"`   // color name or #rrggbb, empty is transparent
	Version     string  `toml:"version"`      // modern or legacy font set
	Engine      string  `toml:"engine"`       // font engine name
	FontDir     string  `toml:"font_dir"`     // directory with the game font files
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Size:    16,
			Padding: 2,
			Shadow:  true,
			Align:   "left",
			Version: "modern",
			Engine:  "ximage",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Render.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (r RenderConfig) Validate() error {
	var errs []error
	if r.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %v", r.Size))
	}
	if r.Width < 0 || r.Height < 0 || r.Padding < 0 {
		errs = append(errs, errors.New("width, height and padding must not be negative"))
	}
	if _, ok := text.ParseAlignment(r.Align); !ok {
		errs = append(errs, fmt.Errorf("unknown align %q", r.Align))
	}
	if _, ok := mctext.ParseFontVersion(r.Version); !ok {
		errs = append(errs, fmt.Errorf("unknown font version %q", r.Version))
	}
	if !slices.Contains(text.Parsers(), r.Engine) {
		errs = append(errs, fmt.Errorf("unknown engine %q (available: %s)", r.Engine, strings.Join(text.Parsers(), ", ")))
	}
	if r.Background != "" {
		if _, ok := mctext.ParseColor(r.Background); !ok {
			errs = append(errs, fmt.Errorf("invalid background color %q", r.Background))
		}
	}
	return errors.Join(errs...)
}

// bindFlags registers a flag for every field, using the defaults for help
// text. Values land in r; mergeFlags copies the ones the user set.
func (r *RenderConfig) bindFlags(cmd *cobra.Command) {
	def := DefaultConfig().Render
	f := cmd.Flags()
	f.Float64Var(&r.Size, "size", def.Size, "font size in pixels")
	f.IntVar(&r.Width, "width", def.Width, "image width (0 fits the text)")
	f.IntVar(&r.Height, "height", def.Height, "image height (0 fits the text)")
	f.IntVar(&r.Padding, "padding", def.Padding, "margin around the text in pixels")
	f.BoolVar(&r.Shadow, "shadow", def.Shadow, "draw the drop shadow")
	f.StringVar(&r.Align, "align", def.Align, "line alignment: left, center or right")
	f.Float64Var(&r.MaxWidth, "max-width", def.MaxWidth, "wrap width in pixels (0 disables wrapping)")
	f.Float64Var(&r.LineSpacing, "line-spacing", def.LineSpacing, "distance between baselines (0 uses the font)")
	f.StringVar(&r.Background, "background", def.Background, "background color name or #rrggbb (empty is transparent)")
	f.StringVar(&r.Version, "font-version", def.Version, "font set: modern or legacy")
	f.StringVar(&r.Engine, "engine", def.Engine, "font engine: "+strings.Join(text.Parsers(), ", "))
	f.StringVar(&r.FontDir, "font-dir", def.FontDir, "directory with modern/ and legacy/ font files")
}

// mergeFlags overrides the fields of r whose flags were set on cmd.
func (r *RenderConfig) mergeFlags(cmd *cobra.Command, flags RenderConfig) {
	set := cmd.Flags()
	overrides := []struct {
		name  string
		apply func()
	}{
		{"size", func() { r.Size = flags.Size }},
		{"width", func() { r.Width = flags.Width }},
		{"height", func() { r.Height = flags.Height }},
		{"padding", func() { r.Padding = flags.Padding }},
		{"shadow", func() { r.Shadow = flags.Shadow }},
		{"align", func() { r.Align = flags.Align }},
		{"max-width", func() { r.MaxWidth = flags.MaxWidth }},
		{"line-spacing", func() { r.LineSpacing = flags.LineSpacing }},
		{"background", func() { r.Background = flags.Background }},
		{"font-version", func() { r.Version = flags.Version }},
		{"engine", func() { r.Engine = flags.Engine }},
		{"font-dir", func() { r.FontDir = flags.FontDir }},
	}
	for _, o := range overrides {
		if set.Lookup(o.name) != nil && set.Changed(o.name) {
			o.apply()
		}
	}
}

// renderConfig loads the config file and applies the flags set on cmd.
func (c *CLI) renderConfig(cmd *cobra.Command, flags RenderConfig) (RenderConfig, error) {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return RenderConfig{}, err
	}
	r := cfg.Render
	r.mergeFlags(cmd, flags)
	if err := r.Validate(); err != nil {
		return RenderConfig{}, err
	}
	c.Logger.Debug("render config", "size", r.Size, "engine", r.Engine, "version", r.Version, "shadow", r.Shadow)
	return r, nil
}

// layoutOptions converts the config to layout options.
func (r RenderConfig) layoutOptions() text.LayoutOptions {
	align, _ := text.ParseAlignment(r.Align)
	return text.NewLayoutOptions(r.Size).
		WithMaxWidth(r.MaxWidth).
		WithShadow(r.Shadow).
		WithAlign(align).
		WithLineSpacing(r.LineSpacing)
}

// fontSystem loads the fonts the config selects.
func (r RenderConfig) fontSystem() (*text.FontSystem, error) {
	version, _ := mctext.ParseFontVersion(r.Version)
	opts := []text.SystemOption{text.WithEngine(r.Engine)}
	if r.FontDir != "" {
		opts = append(opts, text.WithAssetsFromDir(r.FontDir))
	}
	return text.NewFontSystem(version, opts...)
}
