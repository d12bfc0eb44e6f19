package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tulisan/pkg/htr"
)

// cmd_batch transcribes every image in a directory and writes a .txt sidecar
// next to each one. Already-transcribed files (sidecar present) are skipped
// unless -force is given.
func main() {
	dir := flag.String("dir", "notes", "directory with handwriting images")
	engineKind := flag.String("engine", "", "recognition engine (tesseract, ollama)")
	model := flag.String("model", "", "model identifier")
	workers := flag.Int("workers", 2, "parallel recognition workers")
	force := flag.Bool("force", false, "re-transcribe files that already have a sidecar")
	flag.Parse()

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("read dir %s: %v", *dir, err)
	}

	files := make(chan string)
	go func() {
		defer close(files)
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !isImageFile(name) {
				continue
			}
			path := filepath.Join(*dir, name)
			if !*force {
				if _, err := os.Stat(sidecarPath(path)); err == nil {
					continue
				}
			}
			files <- path
		}
	}()

	if *workers < 1 {
		*workers = 1
	}
	var wg sync.WaitGroup
	var mu sync.Mutex
	done, failed := 0, 0
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine, err := htr.NewEngine(*engineKind, *model)
			if err != nil {
				log.Printf("engine: %v", err)
				return
			}
			defer engine.Close()
			for path := range files {
				text, err := engine.Recognize(path)
				if err != nil {
					log.Printf("recognize %s: %v", path, err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				if err := os.WriteFile(sidecarPath(path), []byte(text+"\n"), 0644); err != nil {
					log.Printf("write sidecar for %s: %v", path, err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				log.Printf("transcribed %s (%d chars)", path, len(text))
				mu.Lock()
				done++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	log.Printf("batch complete: %d transcribed, %d failed", done, failed)
}

func sidecarPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return imagePath[:len(imagePath)-len(ext)] + ".txt"
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".tiff", ".bmp", ".webp":
		return true
	}
	return false
}
