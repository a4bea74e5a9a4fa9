package ocr

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// maxPageWidth bounds recognition memory; wider renders are downscaled.
const maxPageWidth = 2500

// Preprocess applies the cleanup filters used before recognition: grayscale
// conversion, median denoising, global contrast equalization, and light
// smoothing.
func Preprocess(src image.Image) image.Image {
	gray := toGray(src)
	gray = denoise(gray)
	gray = equalize(gray)
	return smooth(gray)
}

// toGray converts any image to grayscale, downscaling pages wider than
// maxPageWidth with a high-quality kernel.
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > maxPageWidth {
		scaled := maxPageWidth * h / w
		dst := image.NewGray(image.Rect(0, 0, maxPageWidth, scaled))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		return dst
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// denoise applies a 3x3 median filter.
func denoise(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)
	copy(dst.Pix, src.Pix)

	var window [9]uint8
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					window[n] = src.Pix[(y+dy)*src.Stride+(x+dx)]
					n++
				}
			}
			dst.Pix[y*dst.Stride+x] = median9(window)
		}
	}
	return dst
}

// median9 returns the median of a 3x3 window by insertion sort.
func median9(w [9]uint8) uint8 {
	for i := 1; i < len(w); i++ {
		for j := i; j > 0 && w[j-1] > w[j]; j-- {
			w[j-1], w[j] = w[j], w[j-1]
		}
	}
	return w[4]
}

// equalize stretches contrast with global histogram equalization.
func equalize(src *image.Gray) *image.Gray {
	b := src.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return src
	}

	var hist [256]int
	for _, p := range src.Pix {
		hist[p]++
	}

	var lut [256]uint8
	cdf := 0
	for i := 0; i < 256; i++ {
		cdf += hist[i]
		lut[i] = uint8(cdf * 255 / total)
	}

	dst := image.NewGray(b)
	for i, p := range src.Pix {
		dst.Pix[i] = lut[p]
	}
	return dst
}

// smooth applies a 3x3 box blur to soften equalization artifacts.
func smooth(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)
	copy(dst.Pix, src.Pix)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum += int(src.Pix[(y+dy)*src.Stride+(x+dx)])
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8(sum / 9)
		}
	}
	return dst
}
