package view

import (
	"fmt"
	"math"
	"strings"

	"SecureBank/internal/domain/models"
)

// Slice colours, applied by position.
var pieColors = []string{"#FF6B6B", "#51CF66"}

// Bar tones, mapped to CSS classes.
const (
	ToneSuccess = "success"
	ToneWarning = "warning"
	ToneError   = "error"
)

type PieSlice struct {
	Label   string
	Value   float64
	Percent int
	Color   string
}

// Pie is a pie chart drawn with a CSS conic-gradient.
type Pie struct {
	Slices   []PieSlice
	Gradient string
}

// PiePercent is round(value/total*100). Each slice is rounded on its own so
// the percentages may not sum to exactly 100.
func PiePercent(value, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(value / total * 100))
}

func NewPie(points []models.TargetDistributionPoint) Pie {
	var total float64
	for _, p := range points {
		total += p.Value.OrZero()
	}

	pie := Pie{Slices: make([]PieSlice, 0, len(points))}
	stops := make([]string, 0, len(points))
	var start float64
	for i, p := range points {
		v := p.Value.OrZero()
		s := PieSlice{
			Label:   p.Label,
			Value:   v,
			Percent: PiePercent(v, total),
			Color:   pieColors[i%len(pieColors)],
		}
		pie.Slices = append(pie.Slices, s)

		if total > 0 {
			end := start + v/total*360
			stops = append(stops, fmt.Sprintf("%s %.2fdeg %.2fdeg", s.Color, start, end))
			start = end
		}
	}
	if len(stops) > 0 {
		pie.Gradient = "conic-gradient(" + strings.Join(stops, ", ") + ")"
	}
	return pie
}

// Bar is one horizontal bar. Width is its share of the longest bar in percent.
type Bar struct {
	Label string
	Value float64
	Width float64
	Tone  string
}

// NewJobBars charts success rate per job. Rates above 15% are good and above
// 10% acceptable.
func NewJobBars(points []models.JobSuccessPoint) []Bar {
	var max float64
	for _, p := range points {
		max = math.Max(max, p.SuccessRate.OrZero())
	}

	bars := make([]Bar, 0, len(points))
	for _, p := range points {
		v := p.SuccessRate.OrZero()
		tone := ToneError
		switch {
		case v > 15:
			tone = ToneSuccess
		case v > 10:
			tone = ToneWarning
		}
		bars = append(bars, Bar{Label: p.Job, Value: v, Width: share(v, max), Tone: tone})
	}
	return bars
}

// GroupedBar is one age group with a bar per outcome, scaled to the largest
// count across all groups.
type GroupedBar struct {
	Group              string
	Subscribed         float64
	NotSubscribed      float64
	SubscribedWidth    float64
	NotSubscribedWidth float64
}

func NewAgeBars(points []models.AgeDistributionPoint) []GroupedBar {
	var max float64
	for _, p := range points {
		max = math.Max(max, math.Max(p.Subscribed.OrZero(), p.NotSubscribed.OrZero()))
	}

	out := make([]GroupedBar, 0, len(points))
	for _, p := range points {
		yes, no := p.Subscribed.OrZero(), p.NotSubscribed.OrZero()
		out = append(out, GroupedBar{
			Group:              p.AgeGroup,
			Subscribed:         yes,
			NotSubscribed:      no,
			SubscribedWidth:    share(yes, max),
			NotSubscribedWidth: share(no, max),
		})
	}
	return out
}

// Scatter viewport, in SVG user units.
const (
	ScatterWidth   = 600
	ScatterHeight  = 360
	scatterPadding = 40
)

type ScatterPoint struct {
	X, Y              float64
	Balance, Duration float64
	Label             string
}

// Scatter holds the sampled customers split by outcome, already projected
// into the viewport with balance on X and duration on Y.
type Scatter struct {
	Yes, No                []ScatterPoint
	MinX, MaxX, MinY, MaxY float64
	Width, Height, Padding int
}

func NewScatter(samples []models.BalanceDurationSample) Scatter {
	sc := Scatter{Width: ScatterWidth, Height: ScatterHeight, Padding: scatterPadding}
	if len(samples) == 0 {
		return sc
	}

	sc.MinX, sc.MaxX = math.Inf(1), math.Inf(-1)
	sc.MinY, sc.MaxY = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		x, y := s.Balance.OrZero(), s.Duration.OrZero()
		sc.MinX, sc.MaxX = math.Min(sc.MinX, x), math.Max(sc.MaxX, x)
		sc.MinY, sc.MaxY = math.Min(sc.MinY, y), math.Max(sc.MaxY, y)
	}

	plotW := float64(ScatterWidth - 2*scatterPadding)
	plotH := float64(ScatterHeight - 2*scatterPadding)
	for _, s := range samples {
		x, y := s.Balance.OrZero(), s.Duration.OrZero()
		p := ScatterPoint{
			X:        scatterPadding + scale(x, sc.MinX, sc.MaxX)*plotW,
			Y:        ScatterHeight - scatterPadding - scale(y, sc.MinY, sc.MaxY)*plotH,
			Balance:  x,
			Duration: y,
			Label:    s.YLabel,
		}
		if strings.EqualFold(s.Y, models.OutcomeYes) {
			sc.Yes = append(sc.Yes, p)
		} else {
			sc.No = append(sc.No, p)
		}
	}
	return sc
}

// Bottom is the Y of the horizontal axis.
func (s Scatter) Bottom() int { return s.Height - s.Padding }

// Right is the X where the horizontal axis ends.
func (s Scatter) Right() int { return s.Width - s.Padding }

// ProbabilityBars is the YES/NO probability chart of a prediction.
func ProbabilityBars(p models.Number) (yes, no float64) {
	if !p.Valid {
		return 0, 0
	}
	yes = math.Max(0, math.Min(1, p.Value)) * 100
	return yes, 100 - yes
}

func share(v, max float64) float64 {
	if max <= 0 || v <= 0 {
		return 0
	}
	return math.Round(v/max*1000) / 10
}

// scale maps v into 0..1. A degenerate range puts every point in the middle.
func scale(v, min, max float64) float64 {
	if max <= min {
		return 0.5
	}
	return (v - min) / (max - min)
}
