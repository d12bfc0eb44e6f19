package htr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const (
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "llama3.2-vision"
)

const transcribePrompt = `Transcribe the handwritten text in this image.
Return only the transcription, exactly as written, on a single line.
Do not add explanations, quotes, or formatting.`

// OllamaEngine sends the image to a vision model served by a local Ollama
// instance and decodes the generated text. Generation parameters are left at
// the server defaults.
type OllamaEngine struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaEngine(baseURL, model string) *OllamaEngine {
	if baseURL == "" {
		baseURL = os.Getenv("OLLAMA_HOST")
	}
	if baseURL == "" {
		baseURL = defaultOllamaHost
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaEngine{baseURL: baseURL, model: model, client: &http.Client{}}
}

type ollamaGenerateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (e *OllamaEngine) Recognize(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	req := ollamaGenerateRequest{
		Model:  e.model,
		Prompt: transcribePrompt,
		Images: []string{base64.StdEncoding.EncodeToString(data)},
		Stream: false,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	resp, err := e.client.Post(e.baseURL+"/api/generate", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama request failed with status: %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	var gen ollamaGenerateResponse
	if err := json.Unmarshal(raw, &gen); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	text := CleanTranscript(stripModelWrapping(gen.Response))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (e *OllamaEngine) Close() error { return nil }

// stripModelWrapping removes quote/code-fence decoration that chatty vision
// models wrap around the transcription despite the prompt.
func stripModelWrapping(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}
