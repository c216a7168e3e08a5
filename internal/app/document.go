package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// processFile читает один исходный файл и пишет его предложения.
// Ошибки чтения и разбора возвращаются как *FileError: до записи дело не доходит,
// поэтому пропущенный файл не оставляет в выводе ни одной строки.
func (a *App) processFile(ctx context.Context, path string, out *sentenceWriter) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}

	docs, err := a.extractor.Extract(content)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	source := a.sourceName(path)
	var indexed []IndexedSentence
	fileSentences := 0

	for docIdx, doc := range docs {
		a.stats.Documents++
		if doc.Text == "" {
			a.stats.EmptyDocuments++
			continue
		}

		for sentIdx, sentence := range a.segmenter.Segment(doc.Text) {
			sentence = cleanSentence(sentence)
			if sentence == "" {
				continue
			}

			if err := out.WriteSentence(sentence); err != nil {
				return fmt.Errorf("%w: failed to write sentence: %w", ErrIO, err)
			}
			a.stats.Sentences++
			fileSentences++

			if a.index != nil {
				indexed = append(indexed, IndexedSentence{
					Text:     sentence,
					Source:   source,
					DocID:    doc.ID,
					DocIndex: docIdx,
					Position: sentIdx,
				})
			}
		}
	}

	// файл, начатый до отмены, индексируется до конца, как и его вывод
	if len(indexed) > 0 {
		if err := a.index.Add(context.WithoutCancel(ctx), indexed); err != nil {
			return fmt.Errorf("%w: failed to index sentences of %s: %w", ErrIO, source, err)
		}
	}

	a.logger.Debug("File processed", map[string]interface{}{
		"file":      source,
		"documents": len(docs),
		"sentences": fileSentences,
	})
	return nil
}

// sourceName - путь относительно корня корпуса, для логов и индекса
func (a *App) sourceName(path string) string {
	if rel, err := filepath.Rel(a.cfg.InputDir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

var sentenceBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// cleanSentence обрезает пробелы; переводов строк в строке вывода быть не должно
func cleanSentence(s string) string {
	return strings.TrimSpace(sentenceBreaks.Replace(s))
}
