package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadCells reads one cell per line. A tab separates the source text from
// the current content of the target cell. Lines starting with # are ignored.
// Lines have no length limit; an oversized cell is left to the parser.
func ReadCells(r io.Reader) ([]Cell, error) {
	var cells []Cell
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read cells: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if !strings.HasPrefix(line, "#") {
			text, existing, _ := strings.Cut(line, "\t")
			cells = append(cells, Cell{Text: text, Existing: existing})
		}
		if err == io.EOF {
			break
		}
	}
	return cells, nil
}

// WriteResults writes "text<TAB>output<TAB>status" per result. Cells that
// kept their existing content echo it as output.
func WriteResults(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		out := r.Output
		if r.Status == StatusKeptExisting {
			out = r.Cell.Existing
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", r.Cell.Text, out, r.Status); err != nil {
			return err
		}
	}
	return bw.Flush()
}
