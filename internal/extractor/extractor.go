// Package extractor достаёт тексты <doc> из файлов WikiExtractor.
//
// Файл - это последовательность фрагментов <doc ...>текст</doc> без общего
// корня, то есть не валидный XML. Поэтому содержимое сначала оборачивается
// в синтетический корень (Wrap), а уже потом разбирается.
package extractor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrParse - содержимое файла после обёртки не является корректной разметкой
var ErrParse = errors.New("malformed document markup")

const (
	rootTag = "docs"
	docTag  = "doc"
)

// Document - один фрагмент <doc>. Атрибуты нужны только для логов.
type Document struct {
	ID    string
	Title string
	URL   string
	Text  string
}

// Options управляет очисткой текста документа
type Options struct {
	NormalizeUnicode bool   // NFC
	Format           string // "plain" или "markdown"
}

// Extractor разбирает файл и очищает тексты документов
type Extractor struct {
	cleaners []Cleaner
}

// New собирает цепочку очистки по опциям
func New(opts Options) *Extractor {
	var cleaners []Cleaner
	if opts.NormalizeUnicode {
		cleaners = append(cleaners, NewUnicodeCleaner())
	}
	if strings.EqualFold(opts.Format, "markdown") {
		cleaners = append(cleaners, NewMarkdownCleaner())
	}
	return &Extractor{cleaners: cleaners}
}

// Wrap оборачивает содержимое файла в синтетический корневой элемент
func Wrap(content []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content) + 2*len(rootTag) + 5)
	buf.WriteString("<" + rootTag + ">")
	buf.Write(content)
	buf.WriteString("</" + rootTag + ">")
	return buf.Bytes()
}

// Extract возвращает документы - прямых потомков корня с тегом doc - в порядке файла.
// Текст документа - всё символьное содержимое элемента (включая вложенные
// элементы), переводы строк заменены пробелами, края обрезаны.
func (e *Extractor) Extract(content []byte) ([]Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(Wrap(content)))
	dec.Strict = true
	dec.Entity = xml.HTMLEntity

	var (
		docs  []Document
		cur   *Document
		body  strings.Builder
		depth int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			// depth 1 - синтетический корень, 2 - его прямые потомки
			if depth == 2 && t.Name.Local == docTag {
				cur = newDocument(t.Attr)
				body.Reset()
			}
		case xml.EndElement:
			if depth == 2 && cur != nil {
				cur.Text = e.clean(body.String())
				docs = append(docs, *cur)
				cur = nil
			}
			depth--
		case xml.CharData:
			if cur != nil {
				body.Write(t)
			}
		}
	}

	return docs, nil
}

func newDocument(attrs []xml.Attr) *Document {
	doc := &Document{}
	for _, a := range attrs {
		switch a.Name.Local {
		case "id":
			doc.ID = a.Value
		case "title":
			doc.Title = a.Value
		case "url":
			doc.URL = a.Value
		}
	}
	return doc
}

func (e *Extractor) clean(text string) string {
	for _, c := range e.cleaners {
		text = c.Clean(text)
	}
	return strings.TrimSpace(joinLines(text))
}

var lineBreaks = regexp.MustCompile(`[ \t]*[\r\n][ \t\r\n]*`)

// joinLines склеивает строки через один пробел, чтобы предложение не содержало переводов строк
func joinLines(text string) string {
	return lineBreaks.ReplaceAllString(text, " ")
}
