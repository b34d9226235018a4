// internal/words/words.go
//
// Word list management for rounds.
//
// Responsibilities:
//   - Load the secret and guess lists from configured files or fall back to the
//     embedded defaults in the assets package.
//   - Normalize entries (trim, lowercase, 5 letters a–z only, de-duplicated).
//   - Answer validity lookups for submitted guesses.
//
// Word Lists:
//   - "secrets": candidates for a round's secret word.
//   - "guesses": accepted submissions (always includes every secret).
//
// Loading behavior (Load):
//  1. SecretsFile and GuessesFile both set: secrets from the first, extra guesses from the second.
//  2. Only GuessesFile set: that file is used for both lists.
//  3. Neither set: embedded assets/secrets.txt and assets/guesses.txt.
//
// Lists are immutable once built and safe for concurrent readers.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/nickofolas/wdle/assets"
)

// Length is the number of letters in every secret and guess.
const Length = 5

// ErrEmptySecrets is returned when no usable secret word remains after normalization.
var ErrEmptySecrets = errors.New("words: secrets list is empty")

// Config names optional word list files on disk.
type Config struct {
	SecretsFile string
	GuessesFile string
}

// Lists holds the secret candidates and the accepted-guess set.
type Lists struct {
	secrets []string
	guesses map[string]struct{}
}

// Load builds Lists from cfg, falling back to the embedded defaults.
func Load(cfg Config) (*Lists, error) {
	var secrets, guesses []string
	var err error

	switch {
	case cfg.SecretsFile != "" && cfg.GuessesFile != "":
		if secrets, err = readWordFile(cfg.SecretsFile); err != nil {
			return nil, err
		}
		if guesses, err = readWordFile(cfg.GuessesFile); err != nil {
			return nil, err
		}

	case cfg.SecretsFile == "" && cfg.GuessesFile != "":
		if guesses, err = readWordFile(cfg.GuessesFile); err != nil {
			return nil, err
		}
		secrets = guesses

	case cfg.SecretsFile != "":
		if secrets, err = readWordFile(cfg.SecretsFile); err != nil {
			return nil, err
		}

	default:
		if secrets, err = assets.SecretsList(); err != nil {
			return nil, fmt.Errorf("words: embedded secrets: %w", err)
		}
		if guesses, err = assets.GuessesList(); err != nil {
			return nil, fmt.Errorf("words: embedded guesses: %w", err)
		}
	}

	return New(secrets, guesses)
}

// New builds Lists from in-memory slices. Every secret is also accepted as a guess.
func New(secrets, guesses []string) (*Lists, error) {
	s := normalize(secrets)
	if len(s) == 0 {
		return nil, ErrEmptySecrets
	}
	set := lo.SliceToMap(s, func(w string) (string, struct{}) { return w, struct{}{} })
	for _, w := range normalize(guesses) {
		set[w] = struct{}{}
	}
	return &Lists{secrets: s, guesses: set}, nil
}

// IsValidGuess reports whether w may be submitted.
func (l *Lists) IsValidGuess(w string) bool {
	_, ok := l.guesses[strings.ToLower(w)]
	return ok
}

// Secrets returns the secret candidates. Callers must not modify the slice.
func (l *Lists) Secrets() []string { return l.secrets }

// Stats returns counts of loaded words: (secrets, accepted guesses).
func (l *Lists) Stats() (secrets int, guesses int) {
	return len(l.secrets), len(l.guesses)
}

// readWordFile loads one word per line from a file.
// Blank lines and '#' comments are skipped; normalization happens in New.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// normalize lowercases, drops anything that is not Length letters a–z and removes duplicates.
func normalize(list []string) []string {
	cleaned := lo.Map(list, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	return lo.Uniq(lo.Filter(cleaned, func(w string, _ int) bool {
		return len(w) == Length && isAlpha(w)
	}))
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
