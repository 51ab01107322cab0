package text

// LineMetrics holds vertical font metrics at a specific size.
type LineMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the distance between consecutive baselines used by
// layout: ascent plus descent.
func (m LineMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent
}

// Fallback ratios used when a font provides no line metrics.
const (
	fallbackAscentRatio  = 0.8
	fallbackDescentRatio = 0.2

	// spaceAdvanceRatio is the advance of U+0020 as a fraction of size.
	spaceAdvanceRatio = 0.4
)

// fallbackLineMetrics approximates line metrics from the size alone.
func fallbackLineMetrics(size float64) LineMetrics {
	return LineMetrics{
		Ascent:  size * fallbackAscentRatio,
		Descent: size * fallbackDescentRatio,
	}
}
