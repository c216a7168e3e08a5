package segmenter

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// обученные модели punkt; english лежит в самом пакете sentences/data
//
//go:embed models/*.json
var embeddedModels embed.FS

// PunktSegmenter делит текст обученной моделью Punkt (как nltk sent_tokenize)
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
	model     string
}

// NewPunktSegmenter загружает модель для языка из config
func NewPunktSegmenter(config Config) (*PunktSegmenter, error) {
	model, ok := ModelName(config.Language)
	if !ok {
		return nil, fmt.Errorf("%w: no punkt model for language %q", ErrSetup, config.Language)
	}

	trainingData, err := loadModel(model, config.ModelDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}

	storage, err := sentences.LoadTraining(trainingData)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load punkt model %s: %v", ErrSetup, model, err)
	}

	return &PunktSegmenter{
		tokenizer: sentences.NewSentenceTokenizer(storage),
		model:     model,
	}, nil
}

func (p *PunktSegmenter) Name() string {
	return MethodPunkt + "/" + p.model
}

func (p *PunktSegmenter) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// loadModel ищет модель сначала в modelDir (если задан), затем среди встроенных моделей
func loadModel(model, modelDir string) ([]byte, error) {
	if modelDir != "" {
		path := filepath.Join(modelDir, model+".json")
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return data, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read punkt model %s: %w", path, err)
		}
	}

	if data, err := embeddedModels.ReadFile("models/" + model + ".json"); err == nil && len(data) > 0 {
		return data, nil
	}

	if model == "english" {
		if data, err := sentencesdata.Asset("data/english.json"); err == nil && len(data) > 0 {
			return data, nil
		}
	}

	return nil, fmt.Errorf("punkt model %s not found (model dir %q)", model, modelDir)
}
