package tabular

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Encoding names a text encoding for delimited input files.
type Encoding string

const (
	EncodingAuto    Encoding = "auto"
	EncodingUTF8    Encoding = "utf-8"
	EncodingGBK     Encoding = "gbk"
	EncodingGB18030 Encoding = "gb18030"
	EncodingLatin1  Encoding = "latin-1"
)

// detectionOrder is tried in order when the encoding is auto.
// Latin-1 maps every byte and therefore always succeeds.
var detectionOrder = []Encoding{EncodingUTF8, EncodingGBK, EncodingGB18030, EncodingLatin1}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseEncoding converts a configured encoding name into an Encoding.
//
// Accepted spellings are case-insensitive; "utf8", "cp936" and "iso-8859-1"
// are accepted as aliases. An empty name means auto.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8", "utf-8-sig":
		return EncodingUTF8, nil
	case "gbk", "cp936":
		return EncodingGBK, nil
	case "gb18030":
		return EncodingGB18030, nil
	case "latin-1", "latin1", "iso-8859-1":
		return EncodingLatin1, nil
	default:
		return "", fmt.Errorf("unknown encoding %q (valid: auto, utf-8, gbk, gb18030, latin-1)", name)
	}
}

// Decode converts raw file bytes to UTF-8 text.
//
// With EncodingAuto a UTF-8 byte order mark is stripped and the candidates
// utf-8, gbk, gb18030 and latin-1 are tried in order; the first candidate
// that decodes without invalid sequences wins. An explicit encoding is used
// as is and fails on invalid input.
//
// Parameters:
//   - data: Raw file content
//   - enc: Encoding to use, or EncodingAuto
//
// Returns:
//   - string: Decoded text
//   - Encoding: The encoding actually used
//   - error: When an explicit encoding cannot decode data
func Decode(data []byte, enc Encoding) (string, Encoding, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if enc != EncodingAuto && enc != "" {
		text, ok := decodeAs(data, enc)
		if !ok {
			return "", enc, fmt.Errorf("cannot decode input as %s", enc)
		}
		return text, enc, nil
	}

	for _, candidate := range detectionOrder {
		if text, ok := decodeAs(data, candidate); ok {
			return text, candidate, nil
		}
	}
	return "", "", fmt.Errorf("cannot decode input with any of %v", detectionOrder)
}

func decodeAs(data []byte, enc Encoding) (string, bool) {
	if enc == EncodingUTF8 {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	var e encoding.Encoding
	switch enc {
	case EncodingGBK:
		e = simplifiedchinese.GBK
	case EncodingGB18030:
		e = simplifiedchinese.GB18030
	case EncodingLatin1:
		e = charmap.ISO8859_1
	default:
		return "", false
	}

	out, _, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		return "", false
	}
	// x/text decoders substitute U+FFFD for invalid sequences.
	if enc != EncodingLatin1 && bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
