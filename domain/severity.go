package domain

// MetricKind names one of the five recognized per-type and per-member metrics
type MetricKind string

const (
	MetricMaintainabilityIndex MetricKind = "MaintainabilityIndex"
	MetricCyclomaticComplexity MetricKind = "CyclomaticComplexity"
	MetricSourceLines          MetricKind = "SourceLines"
	MetricExecutableLines      MetricKind = "ExecutableLines"
	MetricClassCoupling        MetricKind = "ClassCoupling"
)

// MetricKinds lists the recognized metrics in the column order used by the renderers.
var MetricKinds = []MetricKind{
	MetricMaintainabilityIndex,
	MetricCyclomaticComplexity,
	MetricClassCoupling,
	MetricSourceLines,
	MetricExecutableLines,
}

// Severity is the band a metric value falls into
type Severity string

const (
	SeverityGood Severity = "good"
	SeverityWarn Severity = "warn"
	SeverityBad  Severity = "bad"
)

// Fixed band boundaries. Each value is the inclusive lower bound of the next band.
const (
	MaintainabilityWarnFloor = 60
	MaintainabilityGoodFloor = 75

	ComplexityWarnFloor = 50
	ComplexityBadFloor  = 100

	LinesWarnFloor = 500
	LinesBadFloor  = 1000

	CouplingWarnFloor = 30
	CouplingBadFloor  = 50
)

// Colour tokens used for HTML cell backgrounds
const (
	ColorGood = "#d1e7dd00"
	ColorWarn = "#415f01"
	ColorBad  = "#ca3505"
)

// Classify maps a metric value to its severity band.
// MaintainabilityIndex is higher-is-better; the other metrics are lower-is-better.
func Classify(kind MetricKind, value int) Severity {
	switch kind {
	case MetricMaintainabilityIndex:
		switch {
		case value < MaintainabilityWarnFloor:
			return SeverityBad
		case value < MaintainabilityGoodFloor:
			return SeverityWarn
		default:
			return SeverityGood
		}
	case MetricCyclomaticComplexity:
		return lowerIsBetter(value, ComplexityWarnFloor, ComplexityBadFloor)
	case MetricSourceLines, MetricExecutableLines:
		return lowerIsBetter(value, LinesWarnFloor, LinesBadFloor)
	case MetricClassCoupling:
		return lowerIsBetter(value, CouplingWarnFloor, CouplingBadFloor)
	default:
		return SeverityGood
	}
}

func lowerIsBetter(value, warnFloor, badFloor int) Severity {
	switch {
	case value < warnFloor:
		return SeverityGood
	case value < badFloor:
		return SeverityWarn
	default:
		return SeverityBad
	}
}

// Color returns the HTML colour token for the band
func (s Severity) Color() string {
	switch s {
	case SeverityWarn:
		return ColorWarn
	case SeverityBad:
		return ColorBad
	default:
		return ColorGood
	}
}
