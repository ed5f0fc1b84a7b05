package questions

import (
	"fmt"
	"os"

	lpdf "github.com/ledongthuc/pdf"
	rpdf "rsc.io/pdf"
)

// Reader backends accepted by Config.Reader.
const (
	ReaderRSC        = "rsc"
	ReaderLedongthuc = "ledongthuc"
)

// Document is an opened PDF. PageText takes a zero-based page index.
type Document interface {
	NumPage() int
	PageText(i int) (string, error)
	Close() error
}

func openDocument(path, reader string) (doc Document, err error) {
	// Both libraries panic on some malformed files instead of returning errors.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	switch reader {
	case "", ReaderRSC:
		return openRSC(path)
	case ReaderLedongthuc:
		return openLedongthuc(path)
	}
	return nil, fmt.Errorf("%w: unknown reader %q", ErrInvalidConfig, reader)
}

func validReader(name string) bool {
	return name == "" || name == ReaderRSC || name == ReaderLedongthuc
}

type rscDocument struct {
	f *os.File
	r *rpdf.Reader
}

func openRSC(path string) (Document, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	r, err := rpdf.NewReader(f, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &rscDocument{f: f, r: r}, nil
}

func (d *rscDocument) NumPage() int { return d.r.NumPage() }

func (d *rscDocument) PageText(i int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	p := d.r.Page(i + 1)
	if p.V.IsNull() {
		return "", nil
	}
	return rscPageText(p), nil
}

func (d *rscDocument) Close() error { return d.f.Close() }

type ledongthucDocument struct {
	f *os.File
	r *lpdf.Reader
}

func openLedongthuc(path string) (Document, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	r, err := lpdf.NewReader(f, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &ledongthucDocument{f: f, r: r}, nil
}

func (d *ledongthucDocument) NumPage() int { return d.r.NumPage() }

func (d *ledongthucDocument) PageText(i int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	p := d.r.Page(i + 1)
	if p.V.IsNull() {
		return "", nil
	}
	return ledongthucPageText(p), nil
}

func (d *ledongthucDocument) Close() error { return d.f.Close() }

func openSized(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if st.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	return f, st.Size(), nil
}

// rscPageText walks the page's content stream directly. Page.Content drops
// space glyphs and reports zero widths for fonts without a Widths array, which
// loses word breaks for the standard fonts.
func rscPageText(p rpdf.Page) string {
	strm := p.V.Key("Contents")
	l := newTextLayout()
	var enc rpdf.TextEncoding = rawEncoding{}
	do := func(stk *rpdf.Stack, op string) {
		raw := make([]rpdf.Value, stk.Len())
		for i := len(raw) - 1; i >= 0; i-- {
			raw[i] = stk.Pop()
		}
		if op == "Tf" && len(raw) == 2 {
			enc = p.Font(raw[0].Name()).Encoder()
		}
		args := make([]operand, len(raw))
		for i, v := range raw {
			args[i] = rscOperand(v, enc)
		}
		l.apply(op, args)
	}
	switch strm.Kind() {
	case rpdf.Stream:
		rpdf.Interpret(strm, do)
	case rpdf.Array:
		for i := 0; i < strm.Len(); i++ {
			rpdf.Interpret(strm.Index(i), do)
		}
	}
	return l.String()
}

func rscOperand(v rpdf.Value, enc rpdf.TextEncoding) operand {
	switch v.Kind() {
	case rpdf.Integer, rpdf.Real:
		return operand{num: v.Float64()}
	case rpdf.String:
		return operand{text: enc.Decode(v.RawString()), isText: true}
	case rpdf.Array:
		items := make([]operand, v.Len())
		for i := range items {
			items[i] = rscOperand(v.Index(i), enc)
		}
		return operand{items: items}
	}
	return operand{}
}

// ledongthucPageText lays the page out like rscPageText. GetPlainText starts a
// line per text object and so never produces blank lines.
func ledongthucPageText(p lpdf.Page) string {
	strm := p.V.Key("Contents")
	if k := strm.Kind(); k != lpdf.Stream && k != lpdf.Array {
		return ""
	}
	l := newTextLayout()
	var enc lpdf.TextEncoding = rawEncoding{}
	lpdf.Interpret(strm, func(stk *lpdf.Stack, op string) {
		raw := make([]lpdf.Value, stk.Len())
		for i := len(raw) - 1; i >= 0; i-- {
			raw[i] = stk.Pop()
		}
		if op == "Tf" && len(raw) == 2 {
			enc = p.Font(raw[0].Name()).Encoder()
		}
		args := make([]operand, len(raw))
		for i, v := range raw {
			args[i] = ledongthucOperand(v, enc)
		}
		l.apply(op, args)
	})
	return l.String()
}

func ledongthucOperand(v lpdf.Value, enc lpdf.TextEncoding) operand {
	switch v.Kind() {
	case lpdf.Integer, lpdf.Real:
		return operand{num: v.Float64()}
	case lpdf.String:
		return operand{text: enc.Decode(v.RawString()), isText: true}
	case lpdf.Array:
		items := make([]operand, v.Len())
		for i := range items {
			items[i] = ledongthucOperand(v.Index(i), enc)
		}
		return operand{items: items}
	}
	return operand{}
}
