package extractor

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// Cleaner преобразует текст документа до сегментации
type Cleaner interface {
	Clean(text string) string
	Name() string
}

// UnicodeCleaner приводит текст к NFC: в дампах встречаются разложенные умлауты
type UnicodeCleaner struct{}

func NewUnicodeCleaner() *UnicodeCleaner {
	return &UnicodeCleaner{}
}

func (u *UnicodeCleaner) Name() string {
	return "nfc"
}

func (u *UnicodeCleaner) Clean(s string) string {
	return norm.NFC.String(s)
}

// MarkdownCleaner убирает inline-разметку markdown, оставляя только текст
type MarkdownCleaner struct {
	md goldmark.Markdown
}

func NewMarkdownCleaner() *MarkdownCleaner {
	return &MarkdownCleaner{md: goldmark.New()}
}

func (m *MarkdownCleaner) Name() string {
	return "markdown"
}

func (m *MarkdownCleaner) Clean(s string) string {
	source := []byte(s)
	doc := m.md.Parser().Parse(text.NewReader(source))

	var buf strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// блоки разделяем переводом строки, дальше он станет пробелом
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				buf.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteString(" ")
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			// отступ в 4 пробела в вики-тексте - обычно просто текст, а не код
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.HTMLBlock:
			// код и html в предложения не попадают
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}
