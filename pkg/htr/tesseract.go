package htr

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes handwriting with a local Tesseract install via
// gosseract. A fresh client is created per pass; gosseract clients are not
// safe to share across images.
type TesseractEngine struct {
	lang string
}

func NewTesseractEngine(lang string) *TesseractEngine {
	if lang == "" {
		lang = "eng"
	}
	return &TesseractEngine{lang: lang}
}

// Recognize runs the multi-pass strategy: the original image plus several
// preprocessed variants, each under a couple of page segmentation modes, then
// the best-scoring cleaned transcript wins.
func (e *TesseractEngine) Recognize(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	rgb := normalizeColor(img)
	base := enhanceForRecognition(rgb)
	bin := binarize(base, 200)
	adv := dilate(adaptiveThreshold(base, 15, 7), 1)

	var candidates []string
	addPass := func(t string, err error) {
		if err != nil {
			log.Printf("htr: tesseract pass failed: %v", err)
			return
		}
		if c := CleanTranscript(t); c != "" {
			candidates = append(candidates, c)
		}
	}

	for _, mode := range []gosseract.PageSegMode{gosseract.PSM_AUTO, gosseract.PSM_SINGLE_BLOCK, gosseract.PSM_SINGLE_LINE} {
		addPass(e.runPass(path, mode))
	}
	for _, variant := range []image.Image{base, bin, adv} {
		tmp, err := saveTemp(variant)
		if err != nil {
			log.Printf("htr: temp variant save failed: %v", err)
			continue
		}
		addPass(e.runPass(tmp, gosseract.PSM_SINGLE_BLOCK))
		addPass(e.runPass(tmp, gosseract.PSM_AUTO))
		_ = os.Remove(tmp)
	}

	best, ok := bestTranscript(candidates)
	if !ok {
		return "", ErrNoText
	}
	log.Printf("htr: tesseract chose transcript from %d candidates snippet=%q", len(candidates), snippet(best, 120))
	return best, nil
}

// runPass OCRs one file with one segmentation mode.
func (e *TesseractEngine) runPass(path string, mode gosseract.PageSegMode) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(e.lang); err != nil {
		return "", fmt.Errorf("set language %q: %w", e.lang, err)
	}
	_ = client.SetPageSegMode(mode)
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}

func (e *TesseractEngine) Close() error { return nil }

// saveTemp writes a preprocessing variant to a temp png for gosseract, which
// only accepts file paths. Caller removes the file.
func saveTemp(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "htr-*.png")
	if err != nil {
		return "", err
	}
	_ = f.Close()
	if err := imaging.Save(img, f.Name()); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
