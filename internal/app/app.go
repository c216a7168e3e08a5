package app

import (
	"fmt"
	"io"
	"os"

	"wiki2sent/internal/config"
	"wiki2sent/internal/extractor"
	"wiki2sent/internal/logging"
	"wiki2sent/internal/segmenter"

	"github.com/philippgille/chromem-go"
)

type App struct {
	cfg              *config.Config
	logger           *logging.Logger
	segmenterFactory *segmenter.Factory
	segmenter        segmenter.Segmenter
	extractor        *extractor.Extractor
	echo             io.Writer
	embeddingFunc    chromem.EmbeddingFunc
	index            *SentenceIndex
	stats            Stats
	skipped          []*FileError
}

// Stats - итоги запуска
type Stats struct {
	Files          int
	Documents      int
	EmptyDocuments int
	Sentences      int
	Skipped        int
}

func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
		segmenterFactory: segmenter.NewFactory(segmenter.Config{
			Language: cfg.Language,
			ModelDir: cfg.PunktModelDir,
		}),
		extractor: extractor.New(extractor.Options{
			NormalizeUnicode: cfg.NormalizeUnicode,
			Format:           cfg.TextFormat,
		}),
		echo: os.Stdout,
	}

	// Initialize embedding function
	ollamaEmbeddingURL := cfg.OllamaURL + "/api"
	app.embeddingFunc = chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, ollamaEmbeddingURL)

	return app, nil
}

// SetEcho задаёт консольный вывод предложений (по умолчанию stdout)
func (a *App) SetEcho(w io.Writer) {
	a.echo = w
}

// SetEmbeddingFunc подменяет функцию эмбеддингов индекса (по умолчанию Ollama)
func (a *App) SetEmbeddingFunc(f chromem.EmbeddingFunc) {
	a.embeddingFunc = f
}

// Init выполняет однократную настройку до обработки файлов.
// Ошибка здесь означает, что ни один файл не будет прочитан.
func (a *App) Init() error {
	seg, err := a.segmenterFactory.New(a.cfg.Segmenter)
	if err != nil {
		return err
	}
	a.segmenter = seg

	a.logger.Info("Segmenter ready", map[string]interface{}{
		"segmenter": seg.Name(),
		"language":  a.cfg.Language,
	})

	if a.cfg.IndexEnabled {
		index, err := newSentenceIndex(a.cfg.IndexFile, a.embeddingFunc)
		if err != nil {
			return fmt.Errorf("%w: failed to create sentence index: %v", ErrSetup, err)
		}
		a.index = index
		a.logger.Info("Sentence index enabled", map[string]interface{}{"index_file": a.cfg.IndexFile})
	}

	return nil
}

// Stats возвращает итоги последнего запуска
func (a *App) Stats() Stats {
	return a.stats
}
