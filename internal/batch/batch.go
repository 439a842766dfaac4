// Package batch joins many segment records concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/pathjoin/internal/pathjoin"
	"golang.org/x/sync/errgroup"
)

// DefaultDelimiter separates segments within a line.
const DefaultDelimiter = "\t"

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Record is one input line split into segments.
type Record struct {
	Line     int      `json:"line"`
	Segments []string `json:"segments"`
}

// Result is the joined path for a Record.
type Result struct {
	Line int    `json:"line"`
	Path string `json:"path"`
}

// Parse reads one record per line from r, splitting each line on delim.
// A blank line yields a record with a single empty segment so line numbers
// line up with the input.
func Parse(r io.Reader, delim string) ([]Record, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		records = append(records, Record{
			Line:     line,
			Segments: strings.Split(text, delim),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}
	return records, nil
}

// Run joins every record using up to workers goroutines. Results are returned
// in the same order as records. If ctx is cancelled, Run returns ctx.Err().
func Run(ctx context.Context, records []Record, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range records {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				Line: records[i].Line,
				Path: pathjoin.Join(records[i].Segments...),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
