// Package placeholder renders the generated product image used when a
// product has no picture of its own.
package placeholder

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"
	"unicode/utf16"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/fjod/go_storefront/internal/domain"
)

const (
	DefaultWidth  = 300
	DefaultHeight = 300

	padding    = 20
	lineHeight = 20
)

var textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 230}

// Hue maps text to a stable hue in [0, 360).
func Hue(text string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(text)) {
		h = (h << 5) - h + int32(c)
	}
	return int(math.Abs(float64(h))) % 360
}

// Render draws a diagonal gradient derived from text with the text wrapped
// and centered on top.
func Render(text string, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	hue := float64(Hue(text))
	from := hsl(hue, 0.60, 0.75)
	to := hsl(hue+30, 0.60, 0.65)

	w, h := float64(width), float64(height)
	norm := w*w + h*h
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := (float64(x)*w + float64(y)*h) / norm
			img.SetRGBA(x, y, lerp(from, to, t))
		}
	}

	face := basicfont.Face7x13
	lines := wrap(face, text, width-2*padding)
	m := face.Metrics()
	baselineShift := (m.Ascent - m.Descent) / 2

	d := &font.Drawer{Dst: img, Src: image.NewUniform(textColor), Face: face}
	startY := (height - (len(lines)-1)*lineHeight) / 2
	for i, line := range lines {
		lw := d.MeasureString(line)
		d.Dot = fixed.Point26_6{
			X: (fixed.I(width) - lw) / 2,
			Y: fixed.I(startY+i*lineHeight) + baselineShift,
		}
		d.DrawString(line)
	}
	return img
}

// PNG writes the placeholder for text as a PNG.
func PNG(w io.Writer, text string, width, height int) error {
	return png.Encode(w, Render(text, width, height))
}

// ImageSource returns the product's own image URL, or fallback when the
// product has none or only a placeholder service URL.
func ImageSource(p domain.Product, fallback string) string {
	if p.ImageURL == "" || strings.Contains(p.ImageURL, "placeholder") {
		return fallback
	}
	return p.ImageURL
}

func wrap(face font.Face, text string, maxWidth int) []string {
	words := strings.Split(text, " ")
	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// hsl converts hue in degrees, saturation and lightness in [0, 1] to RGB.
func hsl(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360) / 360
	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q
	return color.RGBA{
		R: channel(p, q, h+1.0/3),
		G: channel(p, q, h),
		B: channel(p, q, h-1.0/3),
		A: 255,
	}
}

func channel(p, q, t float64) uint8 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	var v float64
	switch {
	case t < 1.0/6:
		v = p + (q-p)*6*t
	case t < 0.5:
		v = q
	case t < 2.0/3:
		v = p + (q-p)*(2.0/3-t)*6
	default:
		v = p
	}
	return uint8(math.Round(v * 255))
}
