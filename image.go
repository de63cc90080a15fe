package plot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Image renders the mask as a grayscale image with one pixel per cell.
// Painted cells are black on white, matching how plots look on paper.
func (m *PaintMask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.cols, m.rows))
	for i, painted := range m.cells {
		if !painted {
			img.Pix[i] = 0xff
		}
	}
	return img
}

// Image renders the counters as a grayscale image with one pixel per cell;
// the most visited cell is black.
func (ps *Passage) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ps.cols, ps.rows))
	var peak uint32
	for _, v := range ps.counters {
		peak = max(peak, v)
	}
	for i, v := range ps.counters {
		shade := uint8(0xff)
		if peak > 0 {
			// #nosec G115 -- v <= peak, so the product stays within [0, 255]
			shade = 0xff - uint8(uint64(v)*0xff/uint64(peak))
		}
		img.Pix[i] = shade
	}
	return img
}

// PaintImage paints the cells where img is dark. The image is stretched
// over the canvas and resampled to the cell grid; a cell is painted when
// its luminance is below threshold.
func (m *PaintMask) PaintImage(img image.Image, threshold uint8) {
	sampled := image.NewGray(image.Rect(0, 0, m.cols, m.rows))
	draw.ApproxBiLinear.Scale(sampled, sampled.Bounds(), img, img.Bounds(), draw.Src, nil)
	for i, v := range sampled.Pix {
		if v < threshold {
			m.cells[i] = true
		}
	}
}

// SavePNG writes the mask to path, scaling each cell to scale x scale
// pixels. scale below 1 is treated as 1.
func (m *PaintMask) SavePNG(path string, scale int) error {
	return savePNG(path, m.Image(), scale)
}

// SavePNG writes the counters to path, see PaintMask.SavePNG.
func (ps *Passage) SavePNG(path string, scale int) error {
	return savePNG(path, ps.Image(), scale)
}

func savePNG(path string, src *image.Gray, scale int) error {
	scale = max(scale, 1)
	var out image.Image = src
	if scale > 1 {
		b := src.Bounds()
		dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		out = dst
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("plot: save png: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("plot: encode png: %w", err)
	}
	return nil
}
