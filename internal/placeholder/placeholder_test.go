package placeholder

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/fjod/go_storefront/internal/domain"
)

func TestHue(t *testing.T) {
	assert.Equal(t, 0, Hue(""))
	assert.Equal(t, 234, Hue("abc"))
	assert.Equal(t, Hue("Ethiopian Single Origin"), Hue("Ethiopian Single Origin"))

	long := "Premium Bundle K with a very long product name that overflows int32 many times over"
	h := Hue(long)
	assert.GreaterOrEqual(t, h, 0)
	assert.Less(t, h, 360)
}

func TestHSL(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, hsl(0, 1, 0.5))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, hsl(120, 1, 0.5))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, hsl(240, 1, 0.5))
	assert.Equal(t, hsl(30, 0.6, 0.65), hsl(390, 0.6, 0.65))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, hsl(0, 0, 1))
}

func TestRender_Gradient(t *testing.T) {
	img := Render("", 100, 100)
	hue := float64(Hue(""))

	assert.Equal(t, hsl(hue, 0.6, 0.75), img.RGBAAt(0, 0))
	end := img.RGBAAt(99, 99)
	want := hsl(hue+30, 0.6, 0.65)
	assert.InDelta(t, want.R, end.R, 2)
	assert.InDelta(t, want.G, end.G, 2)
	assert.InDelta(t, want.B, end.B, 2)
}

func TestRender_DrawsText(t *testing.T) {
	withText := Render("Coffee Grinder", DefaultWidth, DefaultHeight)
	assert.Equal(t, Render("Coffee Grinder", DefaultWidth, DefaultHeight).Pix, withText.Pix)

	bright := 0
	for y := 0; y < DefaultHeight; y++ {
		for x := 0; x < DefaultWidth; x++ {
			c := withText.RGBAAt(x, y)
			if c.R > 240 && c.G > 240 && c.B > 240 {
				bright++
			}
		}
	}
	assert.Positive(t, bright)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"Mug"}, wrap(faceForTest(), "Mug", 260))
	assert.Equal(t, []string{"aaaa", "bbbb"}, wrap(faceForTest(), "aaaa bbbb", 40))
	assert.Equal(t, []string{"aaaa bbbb"}, wrap(faceForTest(), "aaaa bbbb", 100))
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, "Travel Mug", 120, 80))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestImageSource(t *testing.T) {
	const fallback = "/api/v1/stores/s1/products/p1/image.png"
	tests := []struct {
		url  string
		want string
	}{
		{"", fallback},
		{"https://via.placeholder.com/300", fallback},
		{"https://example.com/placeholder.jpg", fallback},
		{"https://cdn.example.com/mug.jpg", "https://cdn.example.com/mug.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImageSource(domain.Product{ImageURL: tt.url}, fallback), tt.url)
	}
}

func faceForTest() font.Face { return basicfont.Face7x13 }
