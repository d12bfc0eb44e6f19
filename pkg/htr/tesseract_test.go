package htr

import (
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestTesseractEngineBlankImage(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed")
	}
	img := imaging.New(400, 200, color.NRGBA{255, 255, 255, 255})
	path := filepath.Join(t.TempDir(), "blank.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save blank image: %v", err)
	}
	e := NewTesseractEngine("eng")
	if _, err := e.Recognize(path); err != ErrNoText {
		t.Fatalf("expected ErrNoText got %v", err)
	}
}

func TestTesseractEngineMissingFile(t *testing.T) {
	e := NewTesseractEngine("")
	if _, err := e.Recognize(filepath.Join(os.TempDir(), "does-not-exist.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
