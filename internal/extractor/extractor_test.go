package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Text)
	}
	return out
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "<docs><doc>x</doc></docs>", string(Wrap([]byte("<doc>x</doc>"))))
	assert.Equal(t, "<docs></docs>", string(Wrap(nil)))
}

func TestExtractSingleDocument(t *testing.T) {
	e := New(Options{})

	docs, err := e.Extract([]byte(`<doc id="1" url="https://de.wikipedia.org/wiki?curid=1" title="Hallo">Hallo Welt. Wie geht es dir?</doc>`))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "1", docs[0].ID)
	assert.Equal(t, "Hallo", docs[0].Title)
	assert.Equal(t, "https://de.wikipedia.org/wiki?curid=1", docs[0].URL)
	assert.Equal(t, "Hallo Welt. Wie geht es dir?", docs[0].Text)
}

func TestExtractConsecutiveDocuments(t *testing.T) {
	e := New(Options{})

	docs, err := e.Extract([]byte(`<doc id="1">Satz eins.</doc><doc id="2">Satz zwei.</doc>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Satz eins.", "Satz zwei."}, texts(docs))
}

func TestExtractWikiExtractorLayout(t *testing.T) {
	content := "<doc id=\"12\" title=\"Anarchismus\">\nAnarchismus\n\nDer Anarchismus ist eine Ideologie.\nEr lehnt Herrschaft ab.\n</doc>\n" +
		"<doc id=\"13\" title=\"Leer\">\n   \n</doc>\n"

	docs, err := New(Options{}).Extract([]byte(content))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "Anarchismus Der Anarchismus ist eine Ideologie. Er lehnt Herrschaft ab.", docs[0].Text)
	assert.NotContains(t, docs[0].Text, "\n")
	assert.Equal(t, "", docs[1].Text)
}

func TestExtractOnlyDirectDocChildren(t *testing.T) {
	content := `<doc>Außen <doc>innen</doc> Ende</doc><page>nicht relevant</page>`

	docs, err := New(Options{}).Extract([]byte(content))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Außen innen Ende", docs[0].Text)
}

func TestExtractKeepsNestedInlineText(t *testing.T) {
	content := `<doc>Die Stadt <a href="Berlin">Berlin</a> ist groß.</doc>`

	docs, err := New(Options{}).Extract([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"Die Stadt Berlin ist groß."}, texts(docs))
}

func TestExtractEntities(t *testing.T) {
	content := `<doc>A &amp; B &lt;C&gt; D&nbsp;E.</doc>`

	docs, err := New(Options{}).Extract([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"A & B <C> D\u00a0E."}, texts(docs))
}

func TestExtractEmptyContent(t *testing.T) {
	docs, err := New(Options{}).Extract(nil)
	require.NoError(t, err)
	assert.Empty(t, docs)

	docs, err = New(Options{}).Extract([]byte("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestExtractMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unclosed doc", `<doc id="1">Satz ohne Ende.`},
		{"mismatched tags", `<doc>Text</page>`},
		{"control character", "<doc>Text \x01 kaputt</doc>"},
		{"bare ampersand", `<doc>A & B</doc>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{}).Extract([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestExtractNormalizesUnicode(t *testing.T) {
	// "u" + combining diaeresis
	content := "<doc>Mu\u0308nchen ist scho\u0308n.</doc>"

	docs, err := New(Options{NormalizeUnicode: true}).Extract([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"München ist schön."}, texts(docs))

	raw, err := New(Options{}).Extract([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"Mu\u0308nchen ist scho\u0308n."}, texts(raw))
}

func TestExtractMarkdownFormat(t *testing.T) {
	content := "<doc>Das ist **fett** und *kursiv*.\n\nSiehe [Berlin](https://de.wikipedia.org/wiki/Berlin).</doc>"

	docs, err := New(Options{Format: "markdown"}).Extract([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"Das ist fett und kursiv. Siehe Berlin."}, texts(docs))
}

func TestExtractMarkdownKeepsIndentedText(t *testing.T) {
	content := "<doc>Erster Absatz.\n\n    Eingerückter Satz\n    über zwei Zeilen.\n\n```\ncode()\n```\nEnde.</doc>"

	docs, err := New(Options{Format: "markdown"}).Extract([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"Erster Absatz. Eingerückter Satz über zwei Zeilen. Ende."}, texts(docs))
}
