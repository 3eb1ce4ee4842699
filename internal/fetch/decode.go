package fetch

import (
	"strings"
	"unicode/utf8"

	"github.com/axgle/mahonia"
	"golang.org/x/net/html/charset"
)

// legacyCharsets are the declared encodings older pages were published in.
// Keys are the canonical names charset.DetermineEncoding reports.
var legacyCharsets = map[string]bool{
	"gbk":     true,
	"gb18030": true,
	"big5":    true,
}

// Decode turns raw page bytes into text. Decoding is lossy by policy:
// valid UTF-8 passes through; bytes declared by a <meta> tag as a legacy
// Chinese charset are converted with mahonia; anything else is read as UTF-8
// with invalid sequences dropped. Only the bytes themselves are consulted, so
// a cached page always decodes exactly like the download that produced it.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	if _, name, _ := charset.DetermineEncoding(raw, ""); legacyCharsets[name] {
		if dec := mahonia.NewDecoder(name); dec != nil {
			return strings.ReplaceAll(dec.ConvertString(string(raw)), string(utf8.RuneError), "")
		}
	}
	return strings.ToValidUTF8(string(raw), "")
}
