package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/fatturapa/fattura"
)

// loader reads fiscal documents from local files, stdin or HTTP URLs.
// This is CLI-specific logic and is not part of the core library.
type loader struct {
	httpClient *http.Client
	stdin      io.Reader
}

func newLoader() *loader {
	return &loader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		stdin:      os.Stdin,
	}
}

// fetch returns the raw bytes behind a path, "-" for stdin, or an http(s) URL.
func (l *loader) fetch(pathOrURL string) ([]byte, error) {
	if pathOrURL == "" || pathOrURL == "-" {
		return io.ReadAll(l.stdin)
	}
	if !strings.HasPrefix(pathOrURL, "http://") && !strings.HasPrefix(pathOrURL, "https://") {
		return os.ReadFile(pathOrURL)
	}

	resp, err := l.httpClient.Get(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pathOrURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, pathOrURL)
	}
	return io.ReadAll(resp.Body)
}

// load fetches and decodes one document. YAML is chosen by .yml/.yaml
// extension; otherwise input starting with '{' is JSON and anything else YAML.
func (l *loader) load(pathOrURL string) (fattura.FiscalDocument, error) {
	var doc fattura.FiscalDocument

	data, err := l.fetch(pathOrURL)
	if err != nil {
		return doc, err
	}
	if err := decodeDocument(data, filepath.Ext(pathOrURL), &doc); err != nil {
		return doc, fmt.Errorf("decode %s: %w", displayName(pathOrURL), err)
	}
	return doc, nil
}

func decodeDocument(data []byte, ext string, doc *fattura.FiscalDocument) error {
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(data, doc)
	case ".json":
		return json.Unmarshal(data, doc)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return json.Unmarshal(data, doc)
	}
	return yaml.Unmarshal(data, doc)
}

func displayName(pathOrURL string) string {
	if pathOrURL == "" || pathOrURL == "-" {
		return "stdin"
	}
	return pathOrURL
}
