// Package images renders composite SVG into raster preview.
package images

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used when SVG has no usable viewBox.
const defaultSVGSize = 1024

// maxRasterDim limits any preview dimension so huge viewBox values do not
// exhaust memory.
var maxRasterDim = 8192

// RasterizeSVG renders SVG into RGBA image of requested width keeping aspect
// ratio of the viewBox. When width is 0 intrinsic size is used.
//
// oksvg does not support CSS classes and text, so preview shows only geometry
// with inline presentation attributes. Unsupported elements are skipped.
func RasterizeSVG(svgData []byte, width int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("unable to parse svg: %w", err)
	}

	intrW := int(math.Ceil(icon.ViewBox.W))
	intrH := int(math.Ceil(icon.ViewBox.H))
	if intrW <= 0 {
		intrW = defaultSVGSize
	}
	if intrH <= 0 {
		intrH = defaultSVGSize
	}

	w, h := intrW, intrH
	if width > 0 {
		w = width
		h = int(math.Round(float64(w) * float64(intrH) / float64(intrW)))
	}
	w, h = clampDims(max(w, 1), max(h, 1))

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}

// clampDims scales dimensions down preserving aspect ratio so neither exceeds
// maxRasterDim.
func clampDims(w, h int) (int, int) {
	if w <= maxRasterDim && h <= maxRasterDim {
		return w, h
	}
	s := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
	return max(int(math.Round(float64(w)*s)), 1), max(int(math.Round(float64(h)*s)), 1)
}

// EncodePNG writes image as best compressed PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}
