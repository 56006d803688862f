package reference

import "testing"

func TestEncodingApply(t *testing.T) {
	tests := []struct {
		enc  Encoding
		in   string
		want string
	}{
		{EncodingNone, "a b", "a b"},
		{EncodingURL, "a b&c=d/é", "a+b%26c%3Dd%2F%C3%A9"},
		{EncodingURLFull, "a /", "%61%20%2f"},
		{EncodingHex, "AB", "4142"},
		{EncodingJSON, "say \"hi\"\n\tü", `say \"hi\"\n\t\u00fc`},
		{EncodingJSON, "😀", `\ud83d\ude00`},
		{EncodingBase64, "ref", "cmVm"},
		{EncodingHTML, `<a href="x">'&'</a>`, "&lt;a href=&quot;x&quot;&gt;&#x27;&amp;&#x27;&lt;/a&gt;"},
		{EncodingHTMLFull, "<a", "&#x3c;&#x61;"},
	}
	for _, tt := range tests {
		t.Run(string(tt.enc)+"/"+tt.in, func(t *testing.T) {
			if got := tt.enc.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodingSet(t *testing.T) {
	var enc Encoding
	if err := enc.Set("URL"); err != nil || enc != EncodingURLFull {
		t.Errorf("Set(URL) = %v, enc = %q", err, enc)
	}
	if err := enc.Set("Url"); err == nil {
		t.Error("Set(Url) expected error")
	}
	if enc.Type() != "encoding" {
		t.Errorf("Type() = %q", enc.Type())
	}
}
