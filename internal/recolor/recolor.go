// Package recolor rewrites the ink pixels of a drawing image to a target
// color while preserving per-pixel alpha. A pixel counts as ink when all
// three color channels fall below the brightness threshold; everything else
// (paper, highlights) is copied through unchanged.
package recolor

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	// Register decoders for the input formats we accept. Output is always PNG.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/pframpton/mediabatch/internal/pipeline"
)

// inkThreshold is the per-channel brightness cutoff: pixels with R, G and B
// all below this value are treated as drawing content.
const inkThreshold = 230

// Recolorer is the image pipeline's transform. It decodes the source,
// normalizes it to NRGBA, rewrites ink pixels to Color, and saves the
// result as PNG.
type Recolorer struct {
	Color ColorSpec
}

// Name implements pipeline.Transform.
func (r *Recolorer) Name() string { return "Recolored" }

// Apply processes one image. Any error (missing file, corrupt image,
// unwritable destination) is returned as a typed per-item failure; the
// caller decides whether the run continues.
func (r *Recolorer) Apply(ctx context.Context, item pipeline.WorkItem) pipeline.Result {
	if err := ctx.Err(); err != nil {
		return pipeline.Failure(item, err)
	}

	src, err := os.Open(item.Source)
	if err != nil {
		return pipeline.Failure(item, fmt.Errorf("open image: %w", err))
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return pipeline.Failure(item, fmt.Errorf("decode %s: %w", item.Source, err))
	}

	out := toNRGBA(img)
	Recolor(out, r.Color)

	if err := os.MkdirAll(filepath.Dir(item.Dest), 0o755); err != nil {
		return pipeline.Failure(item, fmt.Errorf("create output directory: %w", err))
	}
	dst, err := os.Create(item.Dest)
	if err != nil {
		return pipeline.Failure(item, fmt.Errorf("create %s: %w", item.Dest, err))
	}
	if err := png.Encode(dst, out); err != nil {
		dst.Close()
		return pipeline.Failure(item, fmt.Errorf("encode %s: %w", item.Dest, err))
	}
	if err := dst.Close(); err != nil {
		return pipeline.Failure(item, fmt.Errorf("write %s: %w", item.Dest, err))
	}

	res := pipeline.Success(item)
	if fi, err := os.Stat(item.Source); err == nil {
		res.InBytes = fi.Size()
	}
	if fi, err := os.Stat(item.Dest); err == nil {
		res.OutBytes = fi.Size()
	}
	return res
}

// Recolor rewrites every ink pixel of img to c in place. Alpha is never
// touched, so zero-alpha ink keeps its transparency with the new RGB.
func Recolor(img *image.NRGBA, c ColorSpec) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i] < inkThreshold && img.Pix[i+1] < inkThreshold && img.Pix[i+2] < inkThreshold {
				img.Pix[i] = c.R
				img.Pix[i+1] = c.G
				img.Pix[i+2] = c.B
			}
		}
	}
}

// toNRGBA returns img in non-premultiplied RGBA form, synthesizing a fully
// opaque alpha channel when the source format has none. Dimensions are
// preserved exactly.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
