package segmenter

import "strings"

// имена моделей punkt и их коды ISO 639-1
var punktLanguages = map[string]string{
	"cs": "czech",
	"da": "danish",
	"nl": "dutch",
	"en": "english",
	"et": "estonian",
	"fi": "finnish",
	"fr": "french",
	"de": "german",
	"el": "greek",
	"it": "italian",
	"no": "norwegian",
	"nb": "norwegian",
	"pl": "polish",
	"pt": "portuguese",
	"sl": "slovene",
	"es": "spanish",
	"sv": "swedish",
	"tr": "turkish",
}

// ModelName переводит тег языка ("de", "de-DE", "German") в имя модели punkt
func ModelName(tag string) (string, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return "", false
	}

	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}

	if name, ok := punktLanguages[tag]; ok {
		return name, true
	}
	for _, name := range punktLanguages {
		if name == tag {
			return name, true
		}
	}
	return "", false
}
