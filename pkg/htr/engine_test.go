package htr

import "testing"

func TestNewEngineUnknownKind(t *testing.T) {
	if _, err := NewEngine("bogus", ""); err == nil {
		t.Fatalf("expected error for unknown engine kind")
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine("", "")
	if err != nil {
		t.Fatalf("default engine: %v", err)
	}
	te, ok := e.(*TesseractEngine)
	if !ok {
		t.Fatalf("expected tesseract default, got %T", e)
	}
	if te.lang != "eng" {
		t.Fatalf("expected default language eng, got %s", te.lang)
	}
}

func TestNewEngineOllamaModelDefault(t *testing.T) {
	e, err := NewEngine("ollama", "")
	if err != nil {
		t.Fatalf("ollama engine: %v", err)
	}
	oe := e.(*OllamaEngine)
	if oe.model != defaultOllamaModel {
		t.Fatalf("expected default model, got %s", oe.model)
	}
}
