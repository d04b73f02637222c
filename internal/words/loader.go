package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	MinLength = 3
	MaxLength = 7
)

// LoadWords loads words from a list of paths (files or directories).
// Files hold one word per line; blank lines and lines starting with '#'
// are skipped. Words are normalized, de-duplicated and limited to
// MinLength..MaxLength letters.
func LoadWords(paths ...string) ([]string, error) {
	var all []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range files {
				if entry.IsDir() {
					continue
				}
				w, err := loadFile(filepath.Join(path, entry.Name()))
				if err != nil {
					return nil, err
				}
				all = append(all, w...)
			}
		} else {
			w, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			all = append(all, w...)
		}
	}

	return lo.Uniq(all), nil
}

func loadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	w, err := ParseWords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}
	return w, nil
}

// ParseWords reads a word list from r.
func ParseWords(r io.Reader) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := Normalize(line); Acceptable(w) {
			list = append(list, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(list), nil
}

// Normalize is the form words are stored and looked up in.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Acceptable reports whether word is all letters and of a playable length.
func Acceptable(word string) bool {
	n := utf8.RuneCountInString(word)
	if n < MinLength || n > MaxLength {
		return false
	}
	return lo.EveryBy([]rune(word), unicode.IsLetter)
}
