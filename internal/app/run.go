package app

import (
	"context"
	"errors"
	"fmt"

	"wiki2sent/internal/config"
	"wiki2sent/internal/corpus"
)

// Run конвертирует весь корпус в файл "одно предложение - одна строка".
// Файлы обрабатываются строго по очереди в порядке листинга.
func (a *App) Run(ctx context.Context) (err error) {
	if a.segmenter == nil {
		return fmt.Errorf("%w: app is not initialized", ErrSetup)
	}
	a.stats = Stats{}
	a.skipped = nil

	echo := a.echo
	if !a.cfg.Echo {
		echo = nil
	}

	out, err := createSentenceWriter(a.cfg.OutputFile, echo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	// Выходной файл закрывается на любом пути выхода
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close output file: %w", ErrIO, cerr)
		}
	}()

	files, err := corpus.ListFiles(a.cfg.InputDir, corpus.Options{SkipHidden: a.cfg.SkipHidden})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	a.logger.Info("Conversion started", map[string]interface{}{
		"input_dir":   a.cfg.InputDir,
		"output_file": a.cfg.OutputFile,
		"files":       len(files),
		"on_error":    a.cfg.OnError,
	})

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			a.logger.Warn("Conversion interrupted", map[string]interface{}{
				"processed_files": a.stats.Files,
				"remaining_files": len(files) - a.stats.Files - a.stats.Skipped,
			})
			// уже записанные предложения остаются в выводе, индекс сохраняем для них же
			if serr := a.saveIndex(); serr != nil {
				return errors.Join(err, serr)
			}
			a.logSummary()
			return err
		}

		if err := a.processFile(ctx, path, out); err != nil {
			var fileErr *FileError
			if a.cfg.OnError == config.OnErrorSkip && errors.As(err, &fileErr) {
				a.logger.Warn("Skipping file", map[string]interface{}{
					"file":  fileErr.Path,
					"error": fileErr.Err.Error(),
				})
				a.skipped = append(a.skipped, fileErr)
				a.stats.Skipped++
				continue
			}
			a.logger.Error("Conversion aborted", err, map[string]interface{}{"file": path})
			return err
		}
		a.stats.Files++
	}

	if err := a.saveIndex(); err != nil {
		return err
	}

	a.logSummary()

	if len(a.skipped) > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrFilesSkipped, len(a.skipped), len(files))
	}
	return nil
}

func (a *App) saveIndex() error {
	if a.index == nil {
		return nil
	}
	if err := a.index.Save(); err != nil {
		return fmt.Errorf("%w: failed to save sentence index: %w", ErrIO, err)
	}
	a.logger.Info("Sentence index saved", map[string]interface{}{
		"index_file": a.cfg.IndexFile,
		"sentences":  a.index.Count(),
	})
	return nil
}

func (a *App) logSummary() {
	a.logger.Info("Conversion finished", map[string]interface{}{
		"files":           a.stats.Files,
		"documents":       a.stats.Documents,
		"empty_documents": a.stats.EmptyDocuments,
		"sentences":       a.stats.Sentences,
		"skipped_files":   a.stats.Skipped,
	})

	for _, fe := range a.skipped {
		a.logger.Warn("Skipped file", map[string]interface{}{"file": fe.Path, "error": fe.Err.Error()})
	}
}
