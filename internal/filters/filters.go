// Package filters implements the PDF stream filters needed to decode
// embedded ToUnicode and page content streams: FlateDecode (with PNG
// predictors), ASCIIHexDecode, and ASCII85Decode.
package filters

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"fmt"
	"io"
)

// Params holds decode parameters from a stream's DecodeParms dictionary.
type Params map[string]interface{}

// intParam returns an integer parameter or the given default.
func intParam(params Params, key string, def int) int {
	if params == nil {
		return def
	}
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// Flate decompresses zlib/deflate data, applying a predictor when the
// parameters request one.
func Flate(data []byte, params Params) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}

	predictor := intParam(params, "Predictor", 1)
	if predictor == 1 {
		return out, nil
	}
	if predictor >= 10 && predictor <= 15 {
		return pngPredictor(out, params)
	}
	if predictor == 2 {
		return tiffPredictor(out, params)
	}
	return nil, fmt.Errorf("flate: unsupported predictor %d", predictor)
}

// pngPredictor reverses PNG row filtering (predictors 10-15). Each row is
// preceded by a filter-type byte.
func pngPredictor(data []byte, params Params) ([]byte, error) {
	columns := intParam(params, "Columns", 1)
	colors := intParam(params, "Colors", 1)
	bpc := intParam(params, "BitsPerComponent", 8)

	bpp := (colors*bpc + 7) / 8 // bytes per pixel
	rowLen := (columns*colors*bpc + 7) / 8

	if rowLen <= 0 {
		return nil, fmt.Errorf("png predictor: invalid row length")
	}
	if len(data)%(rowLen+1) != 0 {
		return nil, fmt.Errorf("png predictor: data length %d not a multiple of row size %d", len(data), rowLen+1)
	}

	rows := len(data) / (rowLen + 1)
	out := make([]byte, 0, rows*rowLen)
	prev := make([]byte, rowLen)

	for r := 0; r < rows; r++ {
		ft := data[r*(rowLen+1)]
		row := make([]byte, rowLen)
		copy(row, data[r*(rowLen+1)+1:(r+1)*(rowLen+1)])

		switch ft {
		case 0: // None
		case 1: // Sub
			for i := bpp; i < rowLen; i++ {
				row[i] += row[i-bpp]
			}
		case 2: // Up
			for i := 0; i < rowLen; i++ {
				row[i] += prev[i]
			}
		case 3: // Average
			for i := 0; i < rowLen; i++ {
				var left byte
				if i >= bpp {
					left = row[i-bpp]
				}
				row[i] += byte((int(left) + int(prev[i])) / 2)
			}
		case 4: // Paeth
			for i := 0; i < rowLen; i++ {
				var left, upLeft byte
				if i >= bpp {
					left = row[i-bpp]
					upLeft = prev[i-bpp]
				}
				row[i] += paeth(left, prev[i], upLeft)
			}
		default:
			return nil, fmt.Errorf("png predictor: unknown filter type %d", ft)
		}

		out = append(out, row...)
		copy(prev, row)
	}

	return out, nil
}

// paeth is the PNG Paeth predictor function.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := abs(p-int(a)), abs(p-int(b)), abs(p-int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// tiffPredictor reverses TIFF predictor 2 (horizontal differencing).
// Only the common 8-bits-per-component case is supported.
func tiffPredictor(data []byte, params Params) ([]byte, error) {
	columns := intParam(params, "Columns", 1)
	colors := intParam(params, "Colors", 1)
	bpc := intParam(params, "BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("tiff predictor: unsupported bits per component %d", bpc)
	}

	rowLen := columns * colors
	if rowLen <= 0 || len(data)%rowLen != 0 {
		return nil, fmt.Errorf("tiff predictor: data length %d not a multiple of row size %d", len(data), rowLen)
	}

	out := make([]byte, len(data))
	copy(out, data)
	for r := 0; r < len(out)/rowLen; r++ {
		row := out[r*rowLen : (r+1)*rowLen]
		for i := colors; i < rowLen; i++ {
			row[i] += row[i-colors]
		}
	}
	return out, nil
}

// ASCIIHex decodes hex-encoded data. Whitespace is ignored and '>' marks
// end of data; an odd trailing digit is padded with zero.
func ASCIIHex(data []byte) ([]byte, error) {
	var out bytes.Buffer
	var hi byte
	havePair := false

	for _, c := range data {
		if isSpace(c) {
			continue
		}
		if c == '>' {
			break
		}
		v, ok := hexVal(c)
		if !ok {
			return nil, fmt.Errorf("asciihex: invalid digit %q", c)
		}
		if !havePair {
			hi = v
			havePair = true
		} else {
			out.WriteByte(hi<<4 | v)
			havePair = false
		}
	}
	if havePair {
		out.WriteByte(hi << 4)
	}
	return out.Bytes(), nil
}

// ASCII85 decodes base-85 data, tolerating the <~ prefix and stopping at
// the ~> terminator.
func ASCII85(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, []byte("<~"))
	if i := bytes.Index(data, []byte("~>")); i >= 0 {
		data = data[:i]
	}

	out := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n, _, err := ascii85.Decode(out, data, true)
	if err != nil {
		return nil, fmt.Errorf("ascii85: %w", err)
	}
	return out[:n], nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
