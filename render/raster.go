package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sheikhrachel/go-gol-frames/model"
)

// Rasterizer turns a grid into an image, one Scale x Scale block per cell
type Rasterizer struct {
	Palette Palette
	Scale   int
	// Label draws the generation number in the top-left corner
	Label bool
}

// NewRasterizer returns a Rasterizer with the given palette and scale
func NewRasterizer(p Palette, scale int, label bool) *Rasterizer {
	return &Rasterizer{Palette: p, Scale: max(1, scale), Label: label}
}

// Bounds returns the image bounds for a grid
func (r *Rasterizer) Bounds(g *model.Grid) image.Rectangle {
	return image.Rect(0, 0, g.GetWidth()*r.Scale, g.GetHeight()*r.Scale)
}

// Rasterize renders generation gen of g into a new RGBA image
func (r *Rasterizer) Rasterize(gen int, g *model.Grid) *image.RGBA {
	img := image.NewRGBA(r.Bounds(g))
	fillCells(img.Pix, img.Stride, g, r.Scale, r.Palette)

	if r.Label {
		r.drawLabel(img, gen)
	}
	return img
}

// RasterizePaletted renders into a paletted image holding the dead, alive
// and label colors, in that order
func (r *Rasterizer) RasterizePaletted(gen int, g *model.Grid) *image.Paletted {
	rgba := r.Rasterize(gen, g)
	pal := image.NewPaletted(rgba.Bounds(), color.Palette{r.Palette.Dead, r.Palette.Alive, r.Palette.Label})
	draw.Draw(pal, pal.Bounds(), rgba, image.Point{}, draw.Src)
	return pal
}

func fillCells(pix []byte, stride int, g *model.Grid, scale int, p Palette) {
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			col := p.Dead
			if g.Get(x, y).IsAlive() {
				col = p.Alive
			}

			for py := y * scale; py < (y+1)*scale; py++ {
				base := py*stride + x*scale*4
				for px := 0; px < scale; px++ {
					i := base + px*4
					pix[i+0] = col.R
					pix[i+1] = col.G
					pix[i+2] = col.B
					pix[i+3] = col.A
				}
			}
		}
	}
}

func (r *Rasterizer) drawLabel(img *image.RGBA, gen int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Palette.Label),
		Face: face,
		Dot:  fixed.P(2, face.Ascent+1),
	}
	d.DrawString(fmt.Sprintf("gen %d", gen))
}
