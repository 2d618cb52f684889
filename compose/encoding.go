package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	reEncoding = regexp.MustCompile(`^\s*<\?xml\b[^>]*?\bencoding\s*=\s*["']([^"']+)["']`)

	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// toUTF8 converts fragment to UTF-8. Byte order mark takes precedence over
// declared encoding and is dropped. Without it encoding declared in the
// prolog is used. Composite is always UTF-8, prolog itself never reaches it.
func toUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF8) || bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("unable to decode fragment: %w", err)
		}
		return out, nil
	}
	// ASCII compatible encodings never have NUL in the first characters
	if bytes.IndexByte(data[:min(len(data), 4)], 0) >= 0 {
		return nil, errors.New("UTF-16 content without byte order mark")
	}

	m := reEncoding.FindSubmatch(data)
	if m == nil {
		return data, nil
	}
	label := strings.ToLower(strings.TrimSpace(string(m[1])))
	switch {
	case label == "utf-8" || label == "utf8":
		return data, nil
	case strings.HasPrefix(label, "utf-16"):
		return nil, fmt.Errorf("encoding %q declared, but content has no byte order mark", label)
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return io.ReadAll(r)
}
