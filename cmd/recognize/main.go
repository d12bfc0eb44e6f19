package main

import (
	"flag"
	"fmt"
	"log"

	"tulisan/pkg/config"
	"tulisan/pkg/htr"
)

// recognize prints the text found in one handwriting image:
//
//	recognize [-engine tesseract|ollama] [-model id] [-config htr.yaml] <image>
func main() {
	log.SetFlags(log.LstdFlags)

	engineKind := flag.String("engine", "", "recognition engine (tesseract, ollama)")
	model := flag.String("model", "", "model identifier (traineddata language or ollama model)")
	cfgPath := flag.String("config", "", "optional yaml config with engine settings")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: recognize [flags] <image>")
	}
	imagePath := flag.Arg(0)

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *engineKind == "" {
		*engineKind = cfg.Engine
	}
	if *model == "" {
		*model = cfg.Model
	}

	var engine htr.Engine
	if *engineKind == "ollama" && cfg.OllamaHost != "" {
		engine = htr.NewOllamaEngine(cfg.OllamaHost, *model)
	} else {
		engine, err = htr.NewEngine(*engineKind, *model)
		if err != nil {
			log.Fatalf("engine: %v", err)
		}
	}
	defer engine.Close()

	text, err := engine.Recognize(imagePath)
	if err != nil {
		log.Fatalf("recognize %s: %v", imagePath, err)
	}
	fmt.Println(text)
}
