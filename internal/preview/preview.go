// Package preview rasterises product images for the terminal viewer.
//
// An image is fitted to the preview area, drawn under the viewer's current
// zoom and rotation, and emitted as half-block cells: each terminal cell
// carries two vertically stacked pixels, the upper one in the foreground
// colour of "▀" and the lower one in the background colour.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"go.uber.org/zap"

	"github.com/five82/chased/internal/viewer"
)

// ErrRemoteImage is returned for http(s) image refs; previews never fetch.
var ErrRemoteImage = errors.New("remote images are not fetched")

const halfBlock = "▀"

// Load decodes the image file at ref.
func Load(ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return nil, ErrRemoteImage
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", ref, err)
	}
	return img, nil
}

// Fit scales src to the largest size that fits inside w×h while keeping its
// aspect ratio. Images that already fit exactly are copied unscaled.
func Fit(src image.Image, w, h int) *image.RGBA {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 || w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	scale := min(float64(w)/float64(sw), float64(h)/float64(sh))
	fw := max(1, int(float64(sw)*scale))
	fh := max(1, int(float64(sh)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, fw, fh))
	if fw == sw && fh == sh {
		xdraw.Draw(dst, dst.Bounds(), src, sb.Min, xdraw.Src)
		return dst
	}
	var scaler xdraw.Scaler = xdraw.CatmullRom
	if scale > 1 {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// Rasterize draws img centred on a w×h canvas under t. A nil img draws the
// placeholder card instead. Pixels outside the transformed image keep bg.
func Rasterize(img image.Image, t viewer.Transform, w, h int, bg color.Color) image.Image {
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(toRGBA(bg))

	if img == nil {
		drawPlaceholder(dc, t, w, h)
		return dc.Image()
	}

	fitted := Fit(img, w, h)
	fw, fh := float64(fitted.Bounds().Dx()), float64(fitted.Bounds().Dy())
	inv := t.Matrix().Invert()
	cx, cy := float64(w)/2, float64(h)/2
	for y := range h {
		for x := range w {
			p := inv.TransformPoint(gg.Pt(float64(x)+0.5-cx, float64(y)+0.5-cy))
			sx, sy := int(p.X+fw/2), int(p.Y+fh/2)
			if p.X+fw/2 < 0 || p.Y+fh/2 < 0 || sx >= int(fw) || sy >= int(fh) {
				continue
			}
			c := fitted.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			dc.SetPixel(x, y, toRGBA(c))
		}
	}
	return dc.Image()
}

// drawPlaceholder paints a framed card with a sun and a hill, the usual
// "no image" glyph, under the same transform a real image would get.
func drawPlaceholder(dc *gg.Context, t viewer.Transform, w, h int) {
	cw := float64(w) * 0.6
	ch := float64(h) * 0.6
	dc.Translate(float64(w)/2, float64(h)/2)
	dc.Transform(t.Matrix())

	dc.SetHexColor("#3a3f4b")
	dc.DrawRectangle(-cw/2, -ch/2, cw, ch)
	_ = dc.Fill()

	dc.SetHexColor("#e5c07b")
	dc.DrawCircle(cw/4, -ch/5, min(cw, ch)/8)
	_ = dc.Fill()

	dc.SetHexColor("#98c379")
	dc.MoveTo(-cw/2, ch/2)
	dc.LineTo(-cw/8, -ch/10)
	dc.LineTo(cw/4, ch/2)
	dc.ClosePath()
	_ = dc.Fill()
}

// HalfBlocks renders img as terminal rows of half-block cells. An odd final
// pixel row is paired with bg.
func HalfBlocks(img image.Image, bg color.Color) string {
	b := img.Bounds()
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			out.WriteString(style.Render(halfBlock))
		}
	}
	return out.String()
}

// Renderer caches decoded images by ref and renders them at a cell size.
type Renderer struct {
	bg     color.Color
	logger *zap.Logger
	cache  map[string]cached
	load   func(string) (image.Image, error)
}

type cached struct {
	img image.Image
	err error
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground sets the canvas colour behind the image.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) { r.bg = c }
}

// WithLogger sets the logger used for load failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer returns a Renderer with an empty cache.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		bg:     color.Black,
		logger: zap.NewNop(),
		cache:  make(map[string]cached),
		load:   Load,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetBackground changes the canvas colour, e.g. after a theme switch.
func (r *Renderer) SetBackground(c color.Color) {
	r.bg = c
}

// Render returns the preview for ref as cols×rows cells. Images that cannot
// be loaded render as the placeholder; the failure is logged once per ref.
func (r *Renderer) Render(ref string, t viewer.Transform, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	img := r.image(ref)
	return HalfBlocks(Rasterize(img, t, cols, rows*2, r.bg), r.bg)
}

func (r *Renderer) image(ref string) image.Image {
	if ref == "" {
		return nil
	}
	if c, ok := r.cache[ref]; ok {
		return c.img
	}
	img, err := r.load(ref)
	if err != nil {
		r.logger.Warn("image preview unavailable; drawing placeholder",
			zap.String("image", ref),
			zap.Error(err),
		)
		img = nil
	}
	r.cache[ref] = cached{img: img, err: err}
	return img
}

func toRGBA(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
