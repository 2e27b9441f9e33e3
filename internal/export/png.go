package export

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/san-kum/glucosim/internal/glucose"
)

// WritePNG renders the day as a raster line chart and saves it to path.
func WritePNG(path string, series glucose.Series, width, height int) error {
	if len(series) < 2 {
		return fmt.Errorf("export: series too short to chart")
	}

	const margin = 48.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	minY, maxY := series.Min(), series.Max()
	if minY > glucose.Low {
		minY = glucose.Low
	}
	if maxY < glucose.High {
		maxY = glucose.High
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	toX := func(minute int) float64 {
		return margin + float64(minute)/float64(len(series)-1)*plotW
	}
	toY := func(v float64) float64 {
		return margin + plotH - (v-minY)/rangeY*plotH
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	if err := setFont(dc, 12); err != nil {
		return err
	}

	// Hour grid and labels every 4 hours.
	dc.SetHexColor("#dddddd")
	dc.SetLineWidth(1)
	for hour := 0; hour <= 24; hour += 4 {
		x := toX(hour * 60 * (len(series) - 1) / glucose.MinutesPerDay)
		dc.DrawLine(x, margin, x, margin+plotH)
		dc.Stroke()
		dc.SetHexColor("#666666")
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), x, margin+plotH+14, 0.5, 0.5)
		dc.SetHexColor("#dddddd")
	}

	// Threshold guides.
	for _, threshold := range []float64{glucose.Low, glucose.High} {
		y := toY(threshold)
		dc.SetHexColor("#cc7777")
		dc.SetDash(6, 4)
		dc.DrawLine(margin, y, margin+plotW, y)
		dc.Stroke()
		dc.SetDash()
		dc.SetHexColor("#666666")
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", threshold), margin-20, y, 0.5, 0.5)
	}

	// Glucose trace.
	dc.SetHexColor("#00806a")
	dc.SetLineWidth(1.5)
	for i := 1; i < len(series); i++ {
		dc.DrawLine(toX(i-1), toY(series[i-1]), toX(i), toY(series[i]))
	}
	dc.Stroke()

	dc.SetHexColor("#333333")
	dc.DrawStringAnchored("blood glucose (mg/dL)", float64(width)/2, margin/2, 0.5, 0.5)

	return dc.SavePNG(path)
}

func setFont(dc *gg.Context, size float64) error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
	return nil
}
