package passengers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is where the dataset is read from when no path is given.
const DefaultPath = "data/train.csv"

var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("passengers: empty input")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("passengers: missing column")
)

var requiredColumns = []string{"Name", "Sex", "Age", "Fare", "Survived"}

// Parse reads a CSV with a header row. Columns other than Name, Sex, Age,
// Fare and Survived are ignored. Bad cell values never fail the parse:
// an unparsable age is treated as absent, an unparsable fare as 0 and an
// unparsable survival flag as false.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	cell := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(out)+2, err)
		}
		rec := Record{
			Name: cell(row, "Name"),
			Sex:  ParseSex(cell(row, "Sex")),
		}
		if v, err := strconv.ParseFloat(cell(row, "Age"), 64); err == nil {
			rec.Age = v
			rec.AgeKnown = true
		}
		if v, err := strconv.ParseFloat(cell(row, "Fare"), 64); err == nil {
			rec.Fare = v
		}
		if v, err := strconv.ParseFloat(cell(row, "Survived"), 64); err == nil {
			rec.Survived = v == 1
		}
		out = append(out, rec)
	}
	return out, nil
}

// Load reads and parses the dataset at path.
func Load(ctx context.Context, path string) ([]Record, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// LoadResult is the outcome of an asynchronous load.
type LoadResult struct {
	Path    string
	Records []Record
	Err     error
}

// LoadAsync loads path on a separate goroutine. The returned channel yields
// exactly one result and is then closed.
func LoadAsync(ctx context.Context, path string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		defer close(ch)
		recs, err := Load(ctx, path)
		ch <- LoadResult{Path: path, Records: recs, Err: err}
	}()
	return ch
}
