package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// sentenceWriter пишет предложения в выходной файл по одному в строке
// и дублирует их в echo (консоль), если он задан
type sentenceWriter struct {
	file *os.File
	buf  *bufio.Writer
	echo io.Writer
}

// createSentenceWriter создаёт (обрезает) выходной файл
func createSentenceWriter(path string, echo io.Writer) (*sentenceWriter, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &sentenceWriter{
		file: f,
		buf:  bufio.NewWriterSize(f, 64*1024),
		echo: echo,
	}, nil
}

// WriteSentence пишет строку целиком: при аварийном выходе Close допишет буфер,
// и в файле не останется оборванной строки
func (w *sentenceWriter) WriteSentence(s string) error {
	if _, err := w.buf.WriteString(s + "\n"); err != nil {
		return err
	}
	if w.echo != nil {
		if _, err := fmt.Fprintln(w.echo, s); err != nil {
			return err
		}
	}
	return nil
}

func (w *sentenceWriter) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
