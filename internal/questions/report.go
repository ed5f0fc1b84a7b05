package questions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const ReportHeader = "Extracted Math Questions:"

// WriteReport writes the header and one numbered, trimmed entry per candidate,
// each followed by a blank line.
func WriteReport(w io.Writer, candidates []Candidate) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", ReportHeader)
	for i, c := range candidates {
		fmt.Fprintf(bw, "%d. %s\n\n", i+1, strings.TrimSpace(c.Text))
	}
	return bw.Flush()
}

// WriteChoiceReport writes multiple-choice questions in the same layout as
// WriteReport, with options lettered and indented under each question.
func WriteChoiceReport(w io.Writer, qs []ChoiceQuestion) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", ReportHeader)
	for i, q := range qs {
		fmt.Fprintf(bw, "%d. %s\n", i+1, strings.TrimSpace(q.Question))
		for j, opt := range q.Options {
			fmt.Fprintf(bw, "   %s. %s\n", optionLabel(j), strings.TrimSpace(opt))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// optionLabel returns A..Z, then AA, AB and so on.
func optionLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

func writeReportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := write(f); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
