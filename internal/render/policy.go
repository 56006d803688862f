package render

import (
	"fmt"

	"github.com/usdAG/reftool/internal/layout"
	"github.com/usdAG/reftool/internal/reference"
)

// Policy maps items and notes to paragraphs.
type Policy struct {
	cfg    Config
	styler *layout.Styler
}

// New validates cfg and returns a Policy. A nil styler renders without color.
func New(cfg Config, styler *layout.Styler) (*Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render configuration: %w", err)
	}
	if styler == nil {
		styler = layout.PlainStyler()
	}
	return &Policy{cfg: cfg, styler: styler}, nil
}

// Config returns the settings the policy was built with.
func (p *Policy) Config() Config {
	return p.cfg
}

// Headline renders an item title. Every headline but the first gets a blank
// line above it.
func (p *Policy) Headline(title string, first bool) (*layout.Paragraph, error) {
	spacer, err := layout.NewSpacer(p.cfg.InitialIndent)
	if err != nil {
		return nil, err
	}

	padding := layout.Padding{Top: 1}
	if first {
		padding.Top = 0
	}
	headline, err := layout.NewBlock(p.cfg.Headline.Size, padding,
		layout.Head{Label: title, Color: p.cfg.Headline.Color},
		layout.Body{Color: layout.NoColor},
	)
	if err != nil {
		return nil, fmt.Errorf("headline %q: %w", title, err)
	}
	return layout.NewChain(spacer, headline).Build(p.styler)
}

// Note renders one note row: margin, numbered text and comment.
func (p *Policy) Note(note reference.Note) (*layout.Paragraph, error) {
	nc := p.cfg.Note
	reduced := Reduce(note, nc.TextSize)

	spacer, err := layout.NewSpacer(p.cfg.InitialIndent)
	if err != nil {
		return nil, err
	}

	text, err := layout.NewBlock(nc.TextSize,
		layout.Padding{Left: nc.CountIndent},
		layout.Head{Label: note.Number + ")", Color: nc.CountColor},
		layout.Body{Content: reduced.Text, Color: nc.TextColor, Offset: nc.CountPadding + countExtra},
	)
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", note.Number, err)
	}
	if err := text.AddKeyword(reference.ParameterPattern, nc.ParameterColor); err != nil {
		return nil, fmt.Errorf("note %s: %w", note.Number, err)
	}

	comment, err := layout.NewBlock(nc.CommentSize,
		layout.Padding{Left: commentIndent},
		layout.Head{Label: "#", Color: nc.CommentColor},
		layout.Body{Content: reduced.Comment, Color: nc.CommentColor, Offset: commentOffset},
	)
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", note.Number, err)
	}

	return layout.NewChain(spacer, text, comment).Build(p.styler)
}

// Item renders the headline followed by every note of item.
func (p *Policy) Item(item reference.Item, first bool) ([]*layout.Paragraph, error) {
	head, err := p.Headline(item.Title, first)
	if err != nil {
		return nil, err
	}
	paras := []*layout.Paragraph{head}
	for _, note := range item.Notes {
		para, err := p.Note(note)
		if err != nil {
			return nil, err
		}
		paras = append(paras, para)
	}
	return paras, nil
}

// Listing prints items in order. A headline or note that fails to render is
// replaced by a tagged error line and the listing continues. It returns the
// number of failed entries; err is set only when writing fails.
func (p *Policy) Listing(out *layout.Printer, items []reference.Item) (failed int, err error) {
	for i, item := range items {
		head, herr := p.Headline(item.Title, i == 0)
		if err := p.emit(out, head, herr, &failed); err != nil {
			return failed, err
		}
		for _, note := range item.Notes {
			para, nerr := p.Note(note)
			if err := p.emit(out, para, nerr, &failed); err != nil {
				return failed, err
			}
		}
	}
	return failed, nil
}

func (p *Policy) emit(out *layout.Printer, para *layout.Paragraph, renderErr error, failed *int) error {
	if renderErr != nil {
		*failed++
		return out.Println(p.ErrorLine(renderErr))
	}
	return out.Print(para)
}

// ErrorLine formats err as a tagged error line.
func (p *Policy) ErrorLine(err error) string {
	return p.styler.Paint("[-]", "red", true) + " Error: " + err.Error()
}
