package langdetect

import (
	"strings"
)

// Language is a supported language code.
type Language string

const (
	Turkish Language = "tr"
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
	Arabic  Language = "ar"
	Chinese Language = "zh"
	Japanese Language = "ja"
	Russian Language = "ru"
)

// Name returns the English name used in prompts. Unknown codes fall back to
// English, so an omitted language is an explicit decision here rather than a
// silent map miss.
func (l Language) Name() string {
	switch l {
	case Turkish:
		return "Turkish"
	case English:
		return "English"
	case Spanish:
		return "Spanish"
	case French:
		return "French"
	case German:
		return "German"
	case Arabic:
		return "Arabic"
	case Chinese:
		return "Chinese"
	case Japanese:
		return "Japanese"
	case Russian:
		return "Russian"
	default:
		return "English"
	}
}

var turkishWords = []string{
	"merhaba", "selam", "nasıl", "nerede", "ne", "bu", "şu", "o", "ben",
	"sen", "biz", "siz", "onlar", "var", "yok", "iyi", "kötü", "güzel",
	"çok", "az", "büyük", "küçük", "evet", "hayır", "teşekkür", "lütfen",
	"özür", "pardon",
}

var spanishWords = []string{
	"hola", "como", "donde", "que", "este", "ese", "yo", "tu", "nosotros",
	"vosotros", "ellos", "si", "no", "bueno", "malo", "bonito", "mucho",
	"poco", "grande", "pequeño", "gracias", "por favor", "perdón",
}

var frenchWords = []string{
	"bonjour", "salut", "comment", "où", "que", "ce", "cette", "je", "tu",
	"nous", "vous", "ils", "oui", "non", "bon", "mauvais", "beau",
	"beaucoup", "peu", "grand", "petit", "merci", "s'il vous plaît",
	"pardon",
}

var germanWords = []string{
	"hallo", "wie", "wo", "was", "dieser", "diese", "ich", "du", "wir",
	"ihr", "sie", "ja", "nein", "gut", "schlecht", "schön", "viel",
	"wenig", "groß", "klein", "danke", "bitte", "entschuldigung",
}

// Detect infers the user's language from raw message text. Script-range
// tests run before word-list tests because they are unambiguous; word lists
// are tried in a fixed order and the first language whose list matches a
// word of the text wins. Detection is pure and never fails: unmatched input
// yields English.
func Detect(text string) Language {
	lower := strings.ToLower(text)

	if hasTurkishChars(text) || matchesWordList(lower, turkishWords) {
		return Turkish
	}
	if hasRuneInRange(text, 0x0600, 0x06FF) {
		return Arabic
	}
	if hasRuneInRange(text, 0x4E00, 0x9FFF) {
		return Chinese
	}
	if hasRuneInRange(text, 0x3040, 0x309F) || hasRuneInRange(text, 0x30A0, 0x30FF) {
		return Japanese
	}
	if hasRuneInRange(text, 0x0400, 0x04FF) {
		return Russian
	}
	if matchesWordList(lower, spanishWords) {
		return Spanish
	}
	if matchesWordList(lower, frenchWords) {
		return French
	}
	if matchesWordList(lower, germanWords) {
		return German
	}

	return English
}

func hasTurkishChars(text string) bool {
	for _, r := range text {
		switch r {
		case 'ç', 'ğ', 'ı', 'ö', 'ş', 'ü', 'Ç', 'Ğ', 'İ', 'Ö', 'Ş', 'Ü':
			return true
		}
	}
	return false
}

func hasRuneInRange(text string, lo, hi rune) bool {
	for _, r := range text {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}

// matchesWordList reports whether any word of the text matches a listed
// common word. Short list entries must match a whole word; longer entries
// may appear inside an inflected form.
func matchesWordList(lower string, words []string) bool {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '.' ||
			r == '!' || r == '?' || r == ';' || r == ':'
	})
	for _, w := range words {
		// Multi-word entries ("por favor") are tested against the full text.
		if strings.ContainsRune(w, ' ') && strings.Contains(lower, w) {
			return true
		}
	}
	for _, field := range fields {
		for _, w := range words {
			if field == w {
				return true
			}
			if len([]rune(w)) > 2 && strings.Contains(field, w) {
				return true
			}
		}
	}
	return false
}
