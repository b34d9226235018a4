// assets/embed.go
//
// Embedded default word lists.
//   - secrets.txt: candidate secret words.
//   - guesses.txt: extra accepted guesses (secrets are accepted too).
//
// Lines starting with '#' and blank lines are skipped; everything is lowercased.
// Length/alphabet filtering happens in the words package.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed secrets.txt guesses.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// SecretsList returns the embedded secret-word candidates.
func SecretsList() ([]string, error) {
	return readLines("secrets.txt")
}

// GuessesList returns the embedded extra guesses.
func GuessesList() ([]string, error) {
	return readLines("guesses.txt")
}
