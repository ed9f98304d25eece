// Package util holds small helpers shared by the front-ends.
package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anisan-cli/streamkit/filesystem"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]+`)
	repeatedUnderscores = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename turns a source name into a name safe for every filesystem.
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	return strings.Trim(name, "_-.")
}

// Quantify formats count with the matching noun form.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FileStem is the file name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ignore calls f and drops its error. Meant for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, whether it is a file or a directory.
// A missing path is not an error.
func Delete(path string) error {
	fs := filesystem.API()
	exists, err := fs.Exists(path)
	if err != nil || !exists {
		return err
	}
	return fs.RemoveAll(path)
}
