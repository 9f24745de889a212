package core

import (
	"fmt"

	"github.com/pagetext/pagetext/internal/filters"
)

// Stream represents a PDF stream object: a dictionary plus raw bytes.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) Kind() Kind { return KindStream }
func (s *Stream) String() string {
	return fmt.Sprintf("stream %s (%d bytes)", s.Dict.String(), len(s.Data))
}

// Decode returns the stream data with its Filter chain applied. A stream
// without a Filter entry decodes to its raw bytes. The Filter entry may be
// a single name or an array of names applied in sequence, with DecodeParms
// following the same shape.
func (s *Stream) Decode() ([]byte, error) {
	filterObj := s.Dict.Get("Filter")
	if filterObj == nil {
		return s.Data, nil
	}

	parmsObj := s.Dict.Get("DecodeParms")

	if name, ok := filterObj.(Name); ok {
		return applyFilter(s.Data, string(name), parmsDict(parmsObj))
	}

	chain, ok := filterObj.(Array)
	if !ok {
		return nil, fmt.Errorf("invalid Filter type %s", filterObj.Kind())
	}

	data := s.Data
	for i, f := range chain {
		name, ok := f.(Name)
		if !ok {
			return nil, fmt.Errorf("filter %d is not a name", i)
		}

		var parms Dict
		if parmsArr, ok := parmsObj.(Array); ok {
			if i < len(parmsArr) {
				parms = parmsDict(parmsArr[i])
			}
		} else {
			parms = parmsDict(parmsObj)
		}

		var err error
		data, err = applyFilter(data, string(name), parms)
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s): %w", i, name, err)
		}
	}
	return data, nil
}

// applyFilter applies a single named filter.
func applyFilter(data []byte, name string, parms Dict) ([]byte, error) {
	switch name {
	case "FlateDecode", "Fl":
		return filters.Flate(data, dictParams(parms))
	case "ASCIIHexDecode", "AHx":
		return filters.ASCIIHex(data)
	case "ASCII85Decode", "A85":
		return filters.ASCII85(data)
	default:
		return nil, fmt.Errorf("unsupported filter %s", name)
	}
}

// parmsDict normalizes a DecodeParms entry to a Dict; Null and non-dict
// values mean no parameters.
func parmsDict(obj Object) Dict {
	if d, ok := obj.(Dict); ok {
		return d
	}
	return nil
}

// dictParams converts a parameters Dict to the filters package's plain map,
// translating PDF numeric types to Go ints and floats.
func dictParams(d Dict) filters.Params {
	if d == nil {
		return nil
	}
	params := make(filters.Params, len(d))
	for k, v := range d {
		switch obj := v.(type) {
		case Int:
			params[k] = int(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case Name:
			params[k] = string(obj)
		}
	}
	return params
}
