package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestFlateRoundTrip(t *testing.T) {
	orig := []byte("4 beginbfchar <0041> <0042> endbfchar")
	decoded, err := Flate(zlibCompress(t, orig), nil)
	if err != nil {
		t.Fatalf("Flate: %v", err)
	}
	if !bytes.Equal(decoded, orig) {
		t.Errorf("Flate = %q, want %q", decoded, orig)
	}
}

func TestFlateInvalidData(t *testing.T) {
	if _, err := Flate([]byte("not zlib"), nil); err == nil {
		t.Error("expected error for invalid zlib data")
	}
}

func TestFlatePNGPredictorUp(t *testing.T) {
	// Two rows of 4 bytes, filter type 2 (Up): each row adds the row above.
	raw := []byte{
		2, 1, 2, 3, 4,
		2, 1, 1, 1, 1,
	}
	params := Params{"Predictor": 12, "Columns": 4}
	decoded, err := Flate(zlibCompress(t, raw), params)
	if err != nil {
		t.Fatalf("Flate: %v", err)
	}
	want := []byte{1, 2, 3, 4, 2, 3, 4, 5}
	if !bytes.Equal(decoded, want) {
		t.Errorf("decoded = %v, want %v", decoded, want)
	}
}

func TestASCIIHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"simple", "48656C6C6F>", "Hello", false},
		{"whitespace", "48 65\n6C 6C 6F>", "Hello", false},
		{"odd digit padded", "486>", "H`", false},
		{"no terminator", "4849", "HI", false},
		{"invalid digit", "4G>", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCIIHex([]byte(tt.in))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ASCIIHex: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ASCIIHex(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestASCII85(t *testing.T) {
	got, err := ASCII85([]byte("87cUR~>"))
	if err != nil {
		t.Fatalf("ASCII85: %v", err)
	}
	if string(got) != "Hell" {
		t.Errorf("ASCII85 = %q, want %q", got, "Hell")
	}
}
