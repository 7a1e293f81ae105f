package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// URLFileReader reads a newline-delimited URL list in order.
type URLFileReader struct {
	f       *os.File
	scanner *bufio.Scanner
}

// OpenURLFile opens path for reading.
func OpenURLFile(path string) (*URLFileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	return &URLFileReader{f: f, scanner: bufio.NewScanner(f)}, nil
}

// Next returns the next non-blank line, or io.EOF.
func (r *URLFileReader) Next(ctx context.Context) (string, error) {
	for r.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("read url list: %w", err)
	}
	return "", io.EOF
}

func (r *URLFileReader) Close() error {
	return r.f.Close()
}

// URLFileWriter writes one URL per line. The file is truncated on open.
type URLFileWriter struct {
	f *os.File
	w *bufio.Writer
}

// CreateURLFile creates or truncates path.
func CreateURLFile(path string) (*URLFileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create url list: %w", err)
	}
	return &URLFileWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// Write appends url and flushes so that an interrupted run keeps its output.
func (w *URLFileWriter) Write(_ context.Context, url string) error {
	if _, err := w.w.WriteString(url + "\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *URLFileWriter) Close() error {
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
