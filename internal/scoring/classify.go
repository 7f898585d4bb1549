package scoring

// Color is the traffic-light compliance band.
type Color string

const (
	ColorGreen Color = "green"
	ColorAmber Color = "amber"
	ColorRed   Color = "red"
)

// Thresholds are the two percentage cut-points for classification.
// Green >= Amber is expected but not enforced.
type Thresholds struct {
	Green float64 `json:"green"`
	Amber float64 `json:"amber"`
}

// DefaultThresholds matches the assessment tool's defaults.
func DefaultThresholds() Thresholds { return Thresholds{Green: 80, Amber: 60} }

// Classify maps an overall percentage to a band. Boundary values
// classify upward: a score exactly at a threshold earns that band.
func (t Thresholds) Classify(pct float64) Color {
	switch {
	case pct >= t.Green:
		return ColorGreen
	case pct >= t.Amber:
		return ColorAmber
	default:
		return ColorRed
	}
}
