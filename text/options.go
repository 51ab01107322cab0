package text

// SystemOption configures FontSystem creation.
type SystemOption func(*systemConfig)

// systemConfig holds configuration for FontSystem.
type systemConfig struct {
	assets     *Assets
	assetsErr  error
	parserName string
	cacheSize  int
}

// defaultSystemConfig returns the default system configuration.
func defaultSystemConfig() systemConfig {
	return systemConfig{
		parserName: defaultParserName, // Default parser (ximage)
		cacheSize:  DefaultGlyphCacheSize,
	}
}

// WithAssets sets the font files to load. The default is DefaultAssets.
func WithAssets(a *Assets) SystemOption {
	return func(c *systemConfig) {
		c.assets = a
		c.assetsErr = nil
		if a == nil {
			c.assetsErr = ErrNilAssets
		}
	}
}

// WithAssetsFromDir loads the font files from dir with LoadAssetsDir.
// A read failure is reported by NewFontSystem.
func WithAssetsFromDir(dir string) SystemOption {
	return func(c *systemConfig) {
		c.assets, c.assetsErr = LoadAssetsDir(dir)
	}
}

// WithEngine specifies the font engine backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" uses github.com/go-text/typesetting.
//
// Custom engines can be registered with RegisterParser.
func WithEngine(name string) SystemOption {
	return func(c *systemConfig) {
		c.parserName = name
	}
}

// WithGlyphCacheSize sets how many rasterized glyphs each Font keeps.
// Zero or a negative size disables caching.
func WithGlyphCacheSize(n int) SystemOption {
	return func(c *systemConfig) {
		c.cacheSize = n
	}
}
