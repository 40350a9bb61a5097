package fs

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// ReadHTMLFile reads a stored HTML document and decodes it to UTF-8.
// The encoding is taken from a byte order mark or <meta charset>; without
// either, valid UTF-8 is kept as is and anything else is read as
// windows-1252.
func ReadHTMLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	enc, name, _ := charset.DetermineEncoding(data, "")
	if name == "utf-8" || (name == "windows-1252" && utf8.Valid(data)) {
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s as %s: %w", path, name, err)
	}
	return string(decoded), nil
}
