package app

import (
	"errors"
	"fmt"

	"wiki2sent/internal/extractor"
	"wiki2sent/internal/segmenter"
)

// Виды ошибок запуска; проверяются через errors.Is
var (
	// ErrSetup - сегментатор или индекс не инициализировались, файлы не обрабатывались
	ErrSetup = segmenter.ErrSetup
	// ErrIO - каталог, исходный файл или выходной файл недоступны
	ErrIO = errors.New("i/o failure")
	// ErrParse - файл после обёртки не является корректной разметкой
	ErrParse = extractor.ErrParse
	// ErrFilesSkipped - в режиме skip часть файлов пропущена
	ErrFilesSkipped = errors.New("some source files were skipped")
)

// FileError - ошибка чтения или разбора конкретного исходного файла
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
