package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tulisan/pkg/htr"

	"github.com/fsnotify/fsnotify"
)

// cmd_watch transcribes handwriting images as they appear in a drop directory.
// Created files are debounced until their writes settle, then recognized and
// written out as .txt sidecars.
func main() {
	dir := flag.String("dir", "notes", "directory to watch for new images")
	engineKind := flag.String("engine", "", "recognition engine (tesseract, ollama)")
	model := flag.String("model", "", "model identifier")
	flag.Parse()

	engine, err := htr.NewEngine(*engineKind, *model)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer engine.Close()

	if err := watchDirectory(*dir, engine); err != nil {
		log.Fatalf("watch %s: %v", *dir, err)
	}
}

func watchDirectory(dir string, engine htr.Engine) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("watching %s (debounced) ...", dir)

	// debounce map of pending files; a file counts as stable once no new
	// event arrived for 300ms
	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if isImageFile(filepath.Base(ev.Name)) {
					pending[ev.Name] = time.Now()
				}
			}
		case <-ticker.C:
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) > 300*time.Millisecond {
					delete(pending, path)
					transcribe(engine, path)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func transcribe(engine htr.Engine, path string) {
	text, err := engine.Recognize(path)
	if err != nil {
		log.Printf("recognize %s: %v", path, err)
		return
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	if err := os.WriteFile(out, []byte(text+"\n"), 0644); err != nil {
		log.Printf("write %s: %v", out, err)
		return
	}
	log.Printf("transcribed %s -> %s", path, out)
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".tiff", ".bmp", ".webp":
		return true
	}
	return false
}
