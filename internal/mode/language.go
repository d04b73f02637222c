package mode

import (
	"fmt"
	"strings"
)

// Language selects the word list.
type Language int

const (
	English Language = iota
	Spanish
)

// Languages returns every supported language.
func Languages() []Language {
	return []Language{English, Spanish}
}

func (l Language) String() string {
	switch l {
	case English:
		return "English"
	case Spanish:
		return "Spanish"
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Code is the short code words are stored under.
func (l Language) Code() string {
	switch l {
	case English:
		return "en"
	case Spanish:
		return "es"
	}
	return ""
}

// Next cycles through the supported languages.
func (l Language) Next() Language {
	langs := Languages()
	for i, x := range langs {
		if x == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return English
}

// ParseLanguage accepts a language name or code.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(s, l.String()) || strings.EqualFold(s, l.Code()) {
			return l, nil
		}
	}
	return English, fmt.Errorf("unknown language %q (use en or es)", s)
}
