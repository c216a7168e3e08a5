// Package segmenter делит текст документа на предложения.
//
// Сам алгоритм внешний: punkt берёт обученные модели neurosnap/sentences,
// rules - простые правила для языков без модели. Модель грузится один раз
// при создании сегментатора, а не на каждый документ.
package segmenter

import "errors"

// ErrSetup - сегментатор не удалось инициализировать (нет модели, неизвестный язык)
var ErrSetup = errors.New("segmenter setup failed")

// Segmenter - интерфейс для всех сегментаторов
type Segmenter interface {
	// Segment возвращает предложения в порядке текста, без пустых и без краевых пробелов
	Segment(text string) []string

	// Name возвращает название сегментатора для логирования
	Name() string
}

// Config содержит общие параметры для сегментаторов
type Config struct {
	Language string // "german" или "de"
	ModelDir string // каталог с <language>.json, опционально
}
