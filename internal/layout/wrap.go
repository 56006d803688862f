package layout

type token struct {
	text  StyledText
	space bool
}

// tokenize splits a single line into alternating runs of spaces and words.
func tokenize(line StyledText) []token {
	var out []token
	start := 0
	for i := 1; i <= line.Len(); i++ {
		if i < line.Len() && (line.runes[i] == ' ') == (line.runes[start] == ' ') {
			continue
		}
		out = append(out, token{text: line.slice(start, i), space: line.runes[start] == ' '})
		start = i
	}
	return out
}

// Wrap breaks text into lines of at most width cells. Explicit newlines are
// kept, words are wrapped greedily and a word wider than width is split.
func Wrap(text string, width int) []string {
	lines := wrap(Highlight(normalize(text), NoColor, nil), width, width)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// wrap breaks t into lines; the first line holds at most first cells and
// every following line at most rest cells.
func wrap(t StyledText, first, rest int) []StyledText {
	w := &wrapper{first: max(first, 1), rest: max(rest, 1)}
	for _, para := range t.lines() {
		w.paragraph(para)
	}
	return w.out
}

type wrapper struct {
	first, rest int
	out         []StyledText
	line        StyledText
	width       int
}

func (w *wrapper) limit() int {
	if len(w.out) == 0 {
		return w.first
	}
	return w.rest
}

func (w *wrapper) add(parts ...StyledText) {
	for _, p := range parts {
		w.line = w.line.concat(p)
		w.width += p.Width()
	}
}

func (w *wrapper) flush() {
	w.out = append(w.out, w.line.trimRight())
	w.line = StyledText{}
	w.width = 0
}

func (w *wrapper) paragraph(p StyledText) {
	emitted := len(w.out)
	var pending StyledText
	leading := true
	for _, tok := range tokenize(p) {
		if tok.space {
			// Indentation survives only at the start of a paragraph.
			if w.width == 0 && !leading {
				continue
			}
			pending = tok.text
			continue
		}
		w.word(tok.text, &pending)
		leading = false
	}
	if w.width > 0 || len(w.out) == emitted {
		w.flush()
	}
}

func (w *wrapper) word(word StyledText, pending *StyledText) {
	for word.Len() > 0 {
		lim := w.limit()
		pw, ww := pending.Width(), word.Width()
		switch {
		case w.width+pw+ww <= lim:
			w.add(*pending, word)
			*pending = StyledText{}
			return
		case w.width > 0 && ww <= w.rest:
			w.flush()
			*pending = StyledText{}
			continue
		case w.width == 0 && ww <= lim:
			// Drop indentation rather than split a word that fits alone.
			*pending = StyledText{}
			continue
		}

		if w.width == 0 && pw >= lim {
			*pending = StyledText{}
			pw = 0
		}
		room := lim - w.width - pw
		n := fitRunes(word, room)
		if n == 0 {
			if w.width > 0 {
				w.flush()
				*pending = StyledText{}
				continue
			}
			n = 1
		}
		w.add(*pending, word.slice(0, n))
		*pending = StyledText{}
		w.flush()
		word = word.slice(n, word.Len())
	}
}

// fitRunes returns how many leading runes of t fit into width cells.
func fitRunes(t StyledText, width int) int {
	used := 0
	for i, r := range t.runes {
		used += cells.RuneWidth(r)
		if used > width {
			return i
		}
	}
	return t.Len()
}
