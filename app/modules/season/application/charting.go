package seasonservice

import (
	"bytes"

	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours of rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	BarStroke  drawing.Color
	Text       drawing.Color
}

// DefaultPalette is a dark theme that reads well inside Discord embeds.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("1e1f22"),
	Bar:        drawing.ColorFromHex("c9a227"),
	BarStroke:  drawing.ColorFromHex("8a6d12"),
	Text:       drawing.ColorFromHex("e6e6e6"),
}

const (
	chartHeight     = 480
	chartBarWidth   = 40
	chartBarSpacing = 20
	chartMinWidth   = 480
)

// GenerateStandingsChart renders the first top standings as a PNG bar chart of
// total points.
func GenerateStandingsChart(title string, standings []seasontypes.SeasonStanding, top int, palette ChartPalette) ([]byte, error) {
	if len(standings) == 0 {
		return renderNoDataPlaceholder(palette)
	}
	if top > 0 && len(standings) > top {
		standings = standings[:top]
	}

	bars := make([]chart.Value, len(standings))
	maxPoints := 1
	for i, st := range standings {
		bars[i] = chart.Value{
			Label: st.Username,
			Value: float64(st.TotalPoints),
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.BarStroke,
				StrokeWidth: 1,
			},
		}
		maxPoints = max(maxPoints, st.TotalPoints)
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontColor: palette.Text,
		},
		Width:      max(chartMinWidth, 2*chartBarSpacing+len(bars)*(chartBarWidth+chartBarSpacing)),
		Height:     chartHeight,
		BarWidth:   chartBarWidth,
		BarSpacing: chartBarSpacing,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.Text,
		},
		YAxis: chart.YAxis{
			Name: "Points",
			Style: chart.Style{
				FontColor: palette.Text,
			},
			// A fixed range keeps an all-zero season renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxPoints)},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No season scores yet"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		// Render refuses a chart without series.
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					Hidden:      true,
					StrokeColor: palette.Background,
				},
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
				r.SetFont(defaults.GetFont())
				r.SetFontColor(palette.Text)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
