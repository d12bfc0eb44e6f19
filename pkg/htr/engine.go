package htr

import "fmt"

// Engine turns an image file into recognized text. Implementations own their
// model resources and must be Closed when done.
type Engine interface {
	Recognize(path string) (string, error)
	Close() error
}

// NewEngine resolves an engine by kind. model is the backend's model identifier:
// a traineddata language for tesseract (default "eng"), a served model name for
// ollama (default "llama3.2-vision"). Empty kind selects tesseract.
func NewEngine(kind, model string) (Engine, error) {
	switch kind {
	case "tesseract", "":
		return NewTesseractEngine(model), nil
	case "ollama":
		return NewOllamaEngine("", model), nil
	default:
		return nil, fmt.Errorf("unknown engine kind: %s", kind)
	}
}
