package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Режимы обработки ошибок чтения/парсинга отдельного файла
const (
	OnErrorFail = "fail"
	OnErrorSkip = "skip"
)

// Форматы текста внутри <doc>
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
)

type Config struct {
	InputDir         string  `env:"INPUT_DIR" envDefault:"/tmp/data/wikimedia/text/AA"`
	OutputFile       string  `env:"OUTPUT_FILE" envDefault:"/tmp/data/wikimedia/text/combined.txt"`
	Language         string  `env:"SEGMENTER_LANGUAGE" envDefault:"german"`
	Segmenter        string  `env:"SEGMENTER" envDefault:"punkt"`
	PunktModelDir    string  `env:"PUNKT_MODEL_DIR"`
	OnError          string  `env:"ON_ERROR" envDefault:"fail"`
	TextFormat       string  `env:"TEXT_FORMAT" envDefault:"plain"`
	NormalizeUnicode bool    `env:"NORMALIZE_UNICODE" envDefault:"true"`
	SkipHidden       bool    `env:"SKIP_HIDDEN" envDefault:"true"`
	Echo             bool    `env:"ECHO" envDefault:"true"`
	LogLevel         string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFile          string  `env:"LOG_FILE"`
	IndexEnabled     bool    `env:"INDEX_ENABLED" envDefault:"false"`
	IndexFile        string  `env:"INDEX_FILE" envDefault:"./data/sentences.gob.gz"`
	OllamaURL        string  `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel string  `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	TopK             int     `env:"TOP_K" envDefault:"10"`
	MinSimilarity    float32 `env:"MIN_SIMILARITY" envDefault:"0.3"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}

// Validate проверяет значения после слияния env и флагов
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return fmt.Errorf("input directory is required")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("output file is required")
	}
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("language is required")
	}

	switch c.OnError {
	case OnErrorFail, OnErrorSkip:
	default:
		return fmt.Errorf("unknown ON_ERROR mode %q (want %s or %s)", c.OnError, OnErrorFail, OnErrorSkip)
	}

	switch c.TextFormat {
	case FormatPlain, FormatMarkdown:
	default:
		return fmt.Errorf("unknown TEXT_FORMAT %q (want %s or %s)", c.TextFormat, FormatPlain, FormatMarkdown)
	}

	if c.TopK <= 0 {
		return fmt.Errorf("TOP_K must be positive, got %d", c.TopK)
	}
	if c.IndexEnabled && strings.TrimSpace(c.IndexFile) == "" {
		return fmt.Errorf("INDEX_FILE is required when the index is enabled")
	}
	return nil
}
