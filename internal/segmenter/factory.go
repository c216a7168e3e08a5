package segmenter

import (
	"fmt"
	"strings"
)

const (
	MethodPunkt = "punkt"
	MethodRules = "rules"
)

// Factory создаёт сегментатор на основе метода
type Factory struct {
	config Config
}

// NewFactory создаёт новую фабрику сегментаторов
func NewFactory(config Config) *Factory {
	return &Factory{config: config}
}

// New возвращает готовый к работе сегментатор; ошибки оборачивают ErrSetup
func (f *Factory) New(method string) (Segmenter, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", MethodPunkt:
		seg, err := NewPunktSegmenter(f.config)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case MethodRules, "rule", "regex":
		return NewRulesSegmenter(f.config), nil
	default:
		return nil, fmt.Errorf("%w: unknown segmentation method: %s", ErrSetup, method)
	}
}
