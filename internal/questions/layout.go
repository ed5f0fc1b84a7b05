package questions

import (
	"math"
	"strings"
)

// operand is a content-stream operand after decoding: a number, a string
// already mapped through the current font encoding, or an array of those.
type operand struct {
	num    float64
	text   string
	isText bool
	items  []operand
}

// textRun is one shown string and the baseline it was drawn on.
type textRun struct {
	S     string
	Y     float64
	Size  float64
	Moved bool // text position was set since the previous run
}

// textLayout rebuilds page text from the text operators of a content stream.
// Only vertical placement is tracked; glyph widths are not needed because the
// shown strings keep their own spaces.
type textLayout struct {
	runs  []textRun
	size  float64
	scale float64 // vertical scale of the text matrix
	y     float64
	lead  float64
	moved bool
}

func newTextLayout() *textLayout {
	return &textLayout{size: 10, scale: 1}
}

func (l *textLayout) apply(op string, args []operand) {
	switch {
	case op == "BT":
		l.y, l.scale, l.moved = 0, 1, true
	case op == "Tf" && len(args) == 2:
		if s := math.Abs(args[1].num); s > 0 {
			l.size = s
		}
	case op == "TL" && len(args) == 1:
		l.lead = args[0].num
	case op == "TD" && len(args) == 2:
		l.lead = -args[1].num
		l.move(args[1].num)
	case op == "Td" && len(args) == 2:
		l.move(args[1].num)
	case op == "Tm" && len(args) == 6:
		if d := math.Abs(args[3].num); d > 0 {
			l.scale = d
		}
		l.y, l.moved = args[5].num, true
	case op == "T*":
		l.move(-l.lead)
	case op == "Tj" && len(args) == 1:
		l.show(args[0].text)
	case op == "'" && len(args) == 1:
		l.move(-l.lead)
		l.show(args[0].text)
	case op == `"` && len(args) == 3:
		l.move(-l.lead)
		l.show(args[2].text)
	case op == "TJ" && len(args) == 1:
		var b strings.Builder
		for _, it := range args[0].items {
			switch {
			case it.isText:
				b.WriteString(it.text)
			case it.num < -250:
				// A kerning adjustment this wide is a word gap.
				b.WriteByte(' ')
			}
		}
		l.show(b.String())
	}
}

func (l *textLayout) move(ty float64) {
	l.y += ty * l.scale
	l.moved = true
}

func (l *textLayout) show(s string) {
	if s == "" {
		return
	}
	l.runs = append(l.runs, textRun{S: s, Y: l.y, Size: l.size * l.scale, Moved: l.moved})
	l.moved = false
}

func (l *textLayout) String() string { return joinRuns(l.runs) }

// joinRuns lays runs out in stream order. A baseline change of more than half
// the font size starts a new line, more than 1.8x leaves a blank line. Runs
// positioned separately on the same baseline are joined with a space.
func joinRuns(runs []textRun) string {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			prev := runs[i-1]
			size := prev.Size
			if size <= 0 {
				size = 10
			}
			dy := math.Abs(r.Y - prev.Y)
			switch {
			case dy > size*1.8:
				b.WriteString("\n\n")
			case dy > size*0.5:
				b.WriteByte('\n')
			case r.Moved && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(r.S, " "):
				b.WriteByte(' ')
			}
		}
		b.WriteString(r.S)
	}
	return b.String()
}

// rawEncoding passes font codes through unchanged until a Tf selects a font.
type rawEncoding struct{}

func (rawEncoding) Decode(raw string) string { return raw }
