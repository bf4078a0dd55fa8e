package archive

import (
	"strings"
	"unicode"
)

// SanitizeFilename turns s into a name that is safe on NTFS, FAT32 and in URLs.
// Lines are joined with '-'; runs of separators collapse and the result never starts
// with a dot.
func SanitizeFilename(s string) string {
	last := '.'
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))

	for _, line := range parts {
		var b strings.Builder
		for _, c := range line {
			switch {
			case c == '\r':
				continue
			case unicode.IsSpace(c):
				c = ' '
			case unicode.IsControl(c):
				continue
			case strings.ContainsRune(`:\/|?~,;=`, c):
				c = '_'
			case strings.ContainsRune("<>\"*#%{}^[]+`", c):
				c = ' '
			}

			discard := (c == ' ' && last == ' ') ||
				((c == '_' || c == '.') && (last == '.' || last == '_' || last == ' '))
			if discard {
				continue
			}
			last = c
			b.WriteRune(c)
		}
		out = append(out, trimSeparators(b.String()))
	}

	return trimSeparators(strings.Join(out, "-"))
}

func trimSeparators(s string) string {
	return strings.TrimFunc(s, func(c rune) bool {
		return unicode.IsSpace(c) || c == '_' || c == '-'
	})
}
