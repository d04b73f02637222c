package words

import (
	_ "embed"
	"strings"

	"wordem/internal/mode"
)

// Small built-in lists so a fresh database is playable without running the
// seed tool.

//go:embed default_en.txt
var embeddedEnglish string

//go:embed default_es.txt
var embeddedSpanish string

// Defaults returns the built-in word list of a language.
func Defaults(lang mode.Language) []string {
	src := embeddedEnglish
	if lang == mode.Spanish {
		src = embeddedSpanish
	}
	list, _ := ParseWords(strings.NewReader(src))
	return list
}
