package ocr

import (
	"math"
	"os"

	"github.com/disintegration/imaging"
)

// PreprocessOptions controls the contrast/gamma boost applied before OCR.
// Screenshots under 900px wide get the stronger scale boost.
type PreprocessOptions struct {
	Contrast        float64
	Gamma           float64
	ScaleBoostSmall float64
	ScaleBoostLarge float64
}

var (
	// DefaultPreprocess is tuned for typical roster screenshots.
	DefaultPreprocess = PreprocessOptions{Contrast: 1.55, Gamma: 0.85, ScaleBoostSmall: 2, ScaleBoostLarge: 1.5}
	// AltPreprocess is a softer profile used as a second attempt when the
	// default profile yields a thin result.
	AltPreprocess = PreprocessOptions{Contrast: 1.2, Gamma: 0.7, ScaleBoostSmall: 2.2, ScaleBoostLarge: 1.7}
)

// preprocessToTemp writes a grayscale, contrast/gamma boosted, upscaled copy
// of the image to a temp PNG and returns its path with a cleanup func.
func preprocessToTemp(path string, opts PreprocessOptions) (string, func(), error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", nil, err
	}

	scale := opts.ScaleBoostLarge
	if img.Bounds().Dx() < 900 {
		scale = opts.ScaleBoostSmall
	}
	if scale > 1 {
		w := int(math.Round(float64(img.Bounds().Dx()) * scale))
		// Nearest neighbor keeps glyph edges hard for Tesseract.
		img = imaging.Resize(img, w, 0, imaging.NearestNeighbor)
	}

	gray := imaging.Grayscale(img)
	if opts.Gamma > 0 && opts.Gamma != 1 {
		// imaging's gamma parameter is the inverse exponent.
		gray = imaging.AdjustGamma(gray, 1/opts.Gamma)
	}
	if opts.Contrast > 0 && opts.Contrast != 1 {
		gray = imaging.AdjustContrast(gray, (opts.Contrast-1)*100)
	}

	tmp, err := os.CreateTemp("", "roster-ocr-*.png")
	if err != nil {
		return "", nil, err
	}
	name := tmp.Name()
	_ = tmp.Close()
	if err := imaging.Save(gray, name); err != nil {
		_ = os.Remove(name)
		return "", nil, err
	}
	return name, func() { _ = os.Remove(name) }, nil
}
