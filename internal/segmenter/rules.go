package segmenter

import (
	"strings"
	"unicode"
)

// RulesSegmenter - простые правила для языков без модели punkt.
// Граница ставится после серии знаков конца предложения (и закрывающих
// кавычек/скобок), если дальше идёт пробел, а за ним не строчная буква.
// Одиночная точка после сокращения ("Dr.", "z. B.", "Nr."), одной буквы
// или порядкового числа до двух цифр ("3. Oktober") границей не считается.
type RulesSegmenter struct {
	config Config
}

// NewRulesSegmenter создаёт новый rules сегментатор
func NewRulesSegmenter(config Config) *RulesSegmenter {
	return &RulesSegmenter{config: config}
}

func (r *RulesSegmenter) Name() string {
	return MethodRules
}

func (r *RulesSegmenter) Segment(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	emit := func(end int) {
		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			out = append(out, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}

		term := i
		end := i + 1
		for end < len(runes) && isTerminator(runes[end]) {
			end++
		}
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}
		i = end - 1

		if end == term+1 && runes[term] == '.' && isNonBreaking(precedingToken(runes, term)) {
			continue
		}

		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			continue
		}

		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next < len(runes) && unicode.IsLower(runes[next]) {
			continue
		}

		emit(end)
	}
	emit(len(runes))

	return out
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '«', '“', '”', '’', '）', '］', '」', '』':
		return true
	}
	return false
}

// сокращения (в нижнем регистре, без последней точки), после которых предложение не кончается
var abbreviations = map[string]bool{
	"dr": true, "prof": true, "hr": true, "fr": true, "hrn": true,
	"mr": true, "mrs": true, "ms": true, "jr": true, "sr": true, "st": true,
	"nr": true, "ca": true, "bzw": true, "usw": true, "vgl": true, "evtl": true,
	"ggf": true, "inkl": true, "geb": true, "gest": true, "jh": true, "bd": true,
	"abs": true, "art": true, "str": true, "sog": true, "vs": true, "bspw": true,
	"z.b": true, "d.h": true, "u.a": true, "o.ä": true, "u.ä": true, "s.o": true,
	"s.u": true, "z.t": true, "v.a": true, "n.chr": true, "v.chr": true,
}

// precedingToken - слово непосредственно перед позицией точки (без открывающих скобок/кавычек)
func precedingToken(runes []rune, dot int) string {
	start := dot
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	token := strings.TrimLeftFunc(string(runes[start:dot]), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(token)
}

func isNonBreaking(token string) bool {
	if token == "" {
		return false
	}
	if abbreviations[token] {
		return true
	}

	runes := []rune(token)
	// инициалы и "z. B."
	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		return true
	}
	// порядковые числа: "3. Oktober", "21. Jahrhundert"; годы ("1990.") режутся
	if len(runes) <= 2 {
		for _, r := range runes {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}
	return false
}
