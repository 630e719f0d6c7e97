package overlay

import (
	"image"
	"image/color"
	"image/draw"
)

// unpack converts a packed ABGR color.
func unpack(col uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(col),
		G: uint8(col >> 8),
		B: uint8(col >> 16),
		A: uint8(col >> 24),
	}
}

// Draw rasterizes the overlay onto dst in software, blending each rectangle
// over what is already there. Every rectangle is two triangles sharing the
// first and third vertex of its quad, as AddRectFilled emits them.
func (o *Overlay) Draw(dst draw.Image) {
	for k := 0; k+5 < len(o.Idx); k += 6 {
		tl, br := o.Vtx[o.Idx[k]], o.Vtx[o.Idx[k+2]]
		r := image.Rect(int(tl.X+0.5), int(tl.Y+0.5), int(br.X+0.5), int(br.Y+0.5))
		draw.Draw(dst, r, image.NewUniform(unpack(tl.Color)), image.Point{}, draw.Over)
	}
}
