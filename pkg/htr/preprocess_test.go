package htr

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestNormalizeColorSolidAlpha(t *testing.T) {
	src := imaging.New(8, 8, color.NRGBA{10, 20, 30, 128})
	out := normalizeColor(src)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 8 {
		t.Fatalf("size changed: %v", out.Bounds())
	}
	_, _, _, a := out.At(3, 3).RGBA()
	if a != 0xffff {
		t.Fatalf("expected opaque alpha, got %d", a)
	}
}

func TestBinarizeSplitsLightAndDark(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{255, 255, 255, 255})
	img.Set(1, 1, color.NRGBA{10, 10, 10, 255})
	out := binarize(img, 128)
	r, _, _, _ := out.At(1, 1).RGBA()
	if r != 0 {
		t.Fatalf("dark pixel should binarize to black, got %d", r)
	}
	r, _, _, _ = out.At(0, 0).RGBA()
	if r != 0xffff {
		t.Fatalf("light pixel should binarize to white, got %d", r)
	}
}

func TestAdaptiveThresholdUniformImageStaysWhite(t *testing.T) {
	img := imaging.New(20, 20, color.NRGBA{200, 200, 200, 255})
	out := adaptiveThreshold(img, 5, 5)
	r, _, _, _ := out.At(10, 10).RGBA()
	if r != 0xffff {
		t.Fatalf("uniform region should threshold to white, got %d", r)
	}
}

func TestDilateThickensStroke(t *testing.T) {
	img := imaging.New(5, 5, color.NRGBA{255, 255, 255, 255})
	img.Set(2, 2, color.NRGBA{0, 0, 0, 255})
	out := dilate(img, 1)
	r, _, _, _ := out.At(2, 1).RGBA()
	if r != 0 {
		t.Fatalf("neighbor of black pixel should be black after dilate, got %d", r)
	}
}
