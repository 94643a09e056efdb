package cli

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize folds compatibility forms, so full-width digits and operators
// typed on some keyboards read as their ASCII counterparts.
func normalize(s string) string {
	return norm.NFKC.String(s)
}

// readLines returns the non-blank lines of r, normalized.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, normalize(line))
	}
	return lines, sc.Err()
}

// inputs returns the normalized args, or the lines of r if there are none.
func inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) == 0 {
		return readLines(r)
	}
	v := make([]string, len(args))
	for i, a := range args {
		v[i] = normalize(a)
	}
	return v, nil
}
