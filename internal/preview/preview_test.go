package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/chased/internal/viewer"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
	bg   = color.RGBA{A: 255}
)

// splitImage is red on the left half and blue on the right.
func splitImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if x < w/2 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRasterize_Identity(t *testing.T) {
	out := Rasterize(splitImage(40, 20), viewer.Identity(), 40, 20, bg)
	assert.Equal(t, red, rgbaAt(out, 5, 10))
	assert.Equal(t, blue, rgbaAt(out, 34, 10))
}

func TestRasterize_RotateHalfTurn(t *testing.T) {
	out := Rasterize(splitImage(40, 20), viewer.Transform{Zoom: 1, Rotation: 180}, 40, 20, bg)
	assert.Equal(t, blue, rgbaAt(out, 5, 10))
	assert.Equal(t, red, rgbaAt(out, 34, 10))
}

func TestRasterize_RotateRightMovesLeftToTop(t *testing.T) {
	out := Rasterize(splitImage(40, 20), viewer.Transform{Zoom: 1, Rotation: 90}, 40, 20, bg)
	assert.Equal(t, red, rgbaAt(out, 20, 2))
	assert.Equal(t, blue, rgbaAt(out, 20, 17))
}

func TestRasterize_ZoomOutLeavesBorder(t *testing.T) {
	out := Rasterize(splitImage(40, 20), viewer.Transform{Zoom: 0.5, Rotation: 0}, 40, 20, bg)
	assert.Equal(t, bg, rgbaAt(out, 0, 0))
	assert.Equal(t, red, rgbaAt(out, 15, 10))
}

func TestFit_KeepsAspect(t *testing.T) {
	got := Fit(splitImage(200, 100), 40, 40)
	assert.Equal(t, image.Rect(0, 0, 40, 20), got.Bounds())

	got = Fit(splitImage(10, 20), 40, 20)
	assert.Equal(t, image.Rect(0, 0, 10, 20), got.Bounds())
}

func TestRenderer_Dimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "split.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, splitImage(64, 32)))
	require.NoError(t, f.Close())

	r := NewRenderer(WithBackground(bg))
	out := r.Render(path, viewer.Identity(), 24, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Equal(t, 24, lipgloss.Width(line))
	}
	assert.Empty(t, r.Render(path, viewer.Identity(), 0, 6))
}

func TestRenderer_MissingImageLogsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := NewRenderer(WithLogger(zap.New(core)))

	ref := filepath.Join(t.TempDir(), "missing.png")
	first := r.Render(ref, viewer.Identity(), 10, 4)
	second := r.Render(ref, viewer.Transform{Zoom: 2, Rotation: 90}, 10, 4)

	assert.Len(t, strings.Split(first, "\n"), 4)
	assert.Len(t, strings.Split(second, "\n"), 4)
	assert.Equal(t, 1, logs.Len())
}

func TestLoad_RemoteRefsAreNotFetched(t *testing.T) {
	_, err := Load("https://example.com/a.png")
	assert.True(t, errors.Is(err, ErrRemoteImage))
}

func TestHalfBlocks_OddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 5))
	out := HalfBlocks(img, bg)
	assert.Len(t, strings.Split(out, "\n"), 3)
}
