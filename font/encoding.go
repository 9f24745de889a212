package font

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// utf16be decodes UTF-16BE text strings, honoring a leading BOM.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// charmaps maps PDF legacy encoding names to byte decoders. Standard and
// PDFDoc encodings agree with Latin-1 over the printable range this
// pipeline sees; WinAnsi and MacRoman have exact charmap equivalents.
var charmaps = map[string]*charmap.Charmap{
	"WinAnsiEncoding":  charmap.Windows1252,
	"MacRomanEncoding": charmap.Macintosh,
	"StandardEncoding": charmap.ISO8859_1,
	"PDFDocEncoding":   charmap.ISO8859_1,
}

// decodeLegacy decodes raw string bytes using a named legacy encoding.
// A UTF-16BE byte order mark overrides the declared encoding, as text
// strings may be UTF-16 regardless of the font's byte encoding.
func decodeLegacy(name string, data []byte) (string, error) {
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		out, err := utf16be.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("utf-16 string: %w", err)
		}
		return string(out), nil
	}

	cm, ok := charmaps[name]
	if !ok {
		cm = charmap.ISO8859_1
	}

	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}
