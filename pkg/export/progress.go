// Package export renders the profile's learning progress as static
// chart files: a per-category accuracy bar chart written as both SVG
// and PNG so it can be embedded anywhere.
package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/edugram/pkg/stats"
)

// Summary is the data rendered into the progress charts.
type Summary struct {
	ProfileName  string
	Score        int
	ReelsWatched int
	CardsStudied int
	Accuracy     float64 // overall mean in [0, 1]
	Categories   []stats.CategoryScore
}

// Output file names inside the export directory.
const (
	SVGFileName = "progress.svg"
	PNGFileName = "progress.png"
)

// WriteProgressCharts renders the summary to progress.svg and
// progress.png under dir, creating dir if needed. The two files are
// written concurrently; the first failure wins.
func WriteProgressCharts(dir string, s Summary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	layout := buildLayout(s)

	var g errgroup.Group
	g.Go(func() error {
		return renderSVGFile(filepath.Join(dir, SVGFileName), layout)
	})
	g.Go(func() error {
		return renderPNG(filepath.Join(dir, PNGFileName), layout)
	})
	return g.Wait()
}

// --- layout computation ----------------------------------------------------

type layoutBar struct {
	Label    string
	Accuracy float64
	X, Y     float64
	W, H     float64
}

type layoutResult struct {
	Bars    []layoutBar
	Width   int
	Height  int
	Header  float64
	Summary Summary
}

func buildLayout(s Summary) layoutResult {
	const (
		barW         = 64.0
		barGap       = 28.0
		chartH       = 220.0
		padding      = 36.0
		headerHeight = 110.0
	)

	baseline := padding + headerHeight + chartH

	bars := make([]layoutBar, 0, len(s.Categories))
	for i, cs := range s.Categories {
		h := cs.Accuracy * chartH
		bars = append(bars, layoutBar{
			Label:    truncate(cs.Category, 10),
			Accuracy: cs.Accuracy,
			X:        padding + float64(i)*(barW+barGap),
			Y:        baseline - h,
			W:        barW,
			H:        h,
		})
	}

	width := int(padding*2 + float64(len(bars))*(barW+barGap))
	if width < 640 {
		width = 640
	}
	height := int(baseline + padding + 24)

	return layoutResult{
		Bars:    bars,
		Width:   width,
		Height:  height,
		Header:  headerHeight,
		Summary: s,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

// --- rendering -------------------------------------------------------------

var (
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorHeaderBG = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
	colorBar      = color.RGBA{0x7c, 0x3a, 0xed, 0xff}
	colorBarLow   = color.RGBA{0xff, 0xcd, 0xd2, 0xff}
	colorStroke   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}
)

func barColor(accuracy float64) color.RGBA {
	if accuracy < 0.5 {
		return colorBarLow
	}
	return colorBar
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func headerLines(s Summary) []string {
	return []string{
		fmt.Sprintf("score: %d", s.Score),
		fmt.Sprintf("reels watched: %d  cards studied: %d", s.ReelsWatched, s.CardsStudied),
		fmt.Sprintf("overall accuracy: %.0f%%", s.Accuracy*100),
	}
}

func renderPNG(path string, layout layoutResult) error {
	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetColor(colorHeaderBG)
	dc.DrawRoundedRectangle(16, 16, float64(layout.Width)-32, layout.Header-24, 10)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(colorText)
	title := layout.Summary.ProfileName + " learning progress"
	dc.DrawStringAnchored(title, 32, 40, 0, 0.5)
	dc.SetColor(colorSubtle)
	for i, line := range headerLines(layout.Summary) {
		dc.DrawStringAnchored(line, 32, 58+float64(i)*16, 0, 0.5)
	}

	for _, b := range layout.Bars {
		dc.SetColor(barColor(b.Accuracy))
		dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, 4)
		dc.Fill()
		dc.SetColor(colorStroke)
		dc.SetLineWidth(1.2)
		dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, 4)
		dc.Stroke()

		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(b.Label, b.X+b.W/2, b.Y+b.H+14, 0.5, 0.5)
		dc.SetColor(colorText)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", b.Accuracy*100), b.X+b.W/2, b.Y-10, 0.5, 0.5)
	}

	return dc.SavePNG(path)
}

func renderSVGFile(path string, layout layoutResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return renderSVGToWriter(file, layout)
}

func renderSVGToWriter(w io.Writer, layout layoutResult) error {
	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Roundrect(16, 16, layout.Width-32, int(layout.Header-24), 10, 10, fmt.Sprintf("fill:%s", css(colorHeaderBG)))

	title := layout.Summary.ProfileName + " learning progress"
	canvas.Text(32, 44, title, fmt.Sprintf("fill:%s;font-size:16px;font-family:monospace;font-weight:bold", css(colorText)))
	for i, line := range headerLines(layout.Summary) {
		canvas.Text(32, 64+i*17, line, fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(colorSubtle)))
	}

	for _, b := range layout.Bars {
		canvas.Roundrect(int(b.X), int(b.Y), int(b.W), int(b.H), 4, 4,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1.2", css(barColor(b.Accuracy)), css(colorStroke)))
		canvas.Text(int(b.X+b.W/2), int(b.Y+b.H+16), b.Label,
			fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace;text-anchor:middle", css(colorSubtle)))
		canvas.Text(int(b.X+b.W/2), int(b.Y-8), fmt.Sprintf("%.0f%%", b.Accuracy*100),
			fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace;text-anchor:middle", css(colorText)))
	}

	canvas.End()
	return nil
}
