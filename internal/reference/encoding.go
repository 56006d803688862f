package reference

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"
)

// Encoding is a transformation applied to note text before it is copied.
type Encoding string

const (
	EncodingNone     Encoding = ""
	EncodingURL      Encoding = "url"
	EncodingURLFull  Encoding = "URL"
	EncodingHex      Encoding = "hex"
	EncodingJSON     Encoding = "json"
	EncodingBase64   Encoding = "base64"
	EncodingHTML     Encoding = "html"
	EncodingHTMLFull Encoding = "HTML"
)

// Encodings lists the accepted encoding names.
var Encodings = []Encoding{
	EncodingURL, EncodingURLFull, EncodingHex, EncodingJSON,
	EncodingBase64, EncodingHTML, EncodingHTMLFull,
}

// ParseEncoding returns the Encoding with the given name. Names are case
// sensitive: "url" and "URL" differ.
func ParseEncoding(s string) (Encoding, error) {
	if s == "" {
		return EncodingNone, nil
	}
	for _, e := range Encodings {
		if string(e) == s {
			return e, nil
		}
	}
	return EncodingNone, fmt.Errorf("unknown encoding %q (valid: %s)", s, encodingNames())
}

func encodingNames() string {
	names := make([]string, len(Encodings))
	for i, e := range Encodings {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

// String implements pflag.Value.
func (e *Encoding) String() string { return string(*e) }

// Set implements pflag.Value.
func (e *Encoding) Set(s string) error {
	parsed, err := ParseEncoding(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Type implements pflag.Value.
func (e *Encoding) Type() string { return "encoding" }

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Apply encodes text.
func (e Encoding) Apply(text string) string {
	switch e {
	case EncodingURL:
		return url.QueryEscape(text)
	case EncodingURLFull:
		return perByte(text, "%", "")
	case EncodingHex:
		return hex.EncodeToString([]byte(text))
	case EncodingJSON:
		return jsonBody(text)
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString([]byte(text))
	case EncodingHTML:
		return htmlEscaper.Replace(text)
	case EncodingHTMLFull:
		return perByte(text, "&#x", ";")
	default:
		return text
	}
}

func perByte(text, prefix, suffix string) string {
	var b strings.Builder
	for _, c := range []byte(text) {
		b.WriteString(prefix)
		b.WriteString(hex.EncodeToString([]byte{c}))
		b.WriteString(suffix)
	}
	return b.String()
}

// jsonBody quotes text as the body of an ASCII-only JSON string literal.
func jsonBody(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r >= 0x7f && r <= 0xffff):
				fmt.Fprintf(&b, `\u%04x`, r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
