package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/redress-dev/redress/internal/model"
)

// Transcriptor opens tee'd writers that copy review output to a log file while
// it still reaches the console.
type Transcriptor interface {
	Open(console io.Writer, path m.Path) (io.WriteCloser, error)
}

// FileTranscriptor writes transcripts to plain files, one per run.
type FileTranscriptor struct{}

// NewFileTranscriptor constructs a FileTranscriptor.
func NewFileTranscriptor() *FileTranscriptor {
	return &FileTranscriptor{}
}

// Open truncates the transcript at path and returns a writer feeding both the
// file and console. Closing it closes only the file.
func (t *FileTranscriptor) Open(console io.Writer, path m.Path) (io.WriteCloser, error) {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create transcript dir: %w", err)
		}
	}

	file, err := os.Create(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}

	return &teeWriter{console: console, file: file}, nil
}

type teeWriter struct {
	console io.Writer
	file    *os.File
}

// Write goes to the file first so a console error cannot lose transcript
// lines.
func (w *teeWriter) Write(p []byte) (int, error) {
	if _, err := w.file.Write(p); err != nil {
		return 0, err
	}

	return w.console.Write(p)
}

func (w *teeWriter) Close() error {
	return w.file.Close()
}
