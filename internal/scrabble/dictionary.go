package scrabble

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

//go:embed words.txt
var embeddedWords string

// Dictionary - static, case-insensitive word set.
type Dictionary struct {
	words map[string]struct{}
	// byLength - the same words grouped by length, scanned when a word has blanks.
	byLength map[int][]string
}

func NewDictionary(words ...string) *Dictionary {
	dict := &Dictionary{
		words:    make(map[string]struct{}, len(words)),
		byLength: make(map[int][]string),
	}

	for _, word := range words {
		dict.add(word)
	}

	return dict
}

func (that *Dictionary) add(word string) {
	w, ok := normalizeWord(word)
	if !ok {
		return
	}

	if _, exists := that.words[w]; exists {
		return
	}

	that.words[w] = struct{}{}
	that.byLength[len(w)] = append(that.byLength[len(w)], w)
}

// DefaultDictionary - the word list compiled into the binary.
func DefaultDictionary() *Dictionary {
	dict, _ := ReadDictionary(strings.NewReader(embeddedWords))
	return dict
}

// LoadDictionary - reads a word list file, or falls back to the embedded one when path is empty.
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return DefaultDictionary(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	dict, err := ReadDictionary(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return dict, nil
}

// ReadDictionary - one word per line; blank lines, # comments and non-letter words are skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	dict := NewDictionary()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dict.add(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return dict, nil
}

func (that *Dictionary) Len() int {
	return len(that.words)
}

// Contains - exact membership. A blank tile matches any letter.
func (that *Dictionary) Contains(word string) bool {
	w := strings.ToUpper(word)

	if !strings.Contains(w, entity.BlankTile) {
		_, ok := that.words[w]
		return ok
	}

	for _, candidate := range that.byLength[len(w)] {
		if matchesPattern(w, candidate) {
			return true
		}
	}

	return false
}

// matchesPattern - candidate has the same length as pattern.
func matchesPattern(pattern, candidate string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != entity.BlankTile[0] && pattern[i] != candidate[i] {
			return false
		}
	}

	return true
}

func normalizeWord(word string) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return "", false
	}

	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}

	return w, true
}
