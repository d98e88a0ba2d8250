package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal converts a document to indented JSON bytes.
func Marshal(d Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes to a document.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// Write encodes a document as indented JSON to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON document from an io.Reader.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// WriteFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// ReadFile reads a JSON file and returns the decoded document.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
