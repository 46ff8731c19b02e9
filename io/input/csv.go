// Package input is the pipeline's reader collaborator: it turns an address
// (a file path) into a Frame[*string], doing no type inference of its own.
// Type inference belongs to the parse stage; this package only reports
// whether the address exists and whether it is well-formed CSV.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// Option configures a Read call.
type Option = core.Option[Config]

// Config holds the reader's tunables.
type Config struct {
	Delimiter rune
	Header    bool
	NAValues  []string
}

func defaultConfig() Config {
	return Config{Delimiter: ',', Header: true, NAValues: core.DefaultNAValues}
}

// WithDelimiter overrides the field delimiter (default comma).
func WithDelimiter(d rune) Option {
	return func(c *Config) error { c.Delimiter = d; return nil }
}

// WithHeader controls whether the first row is treated as column names.
func WithHeader(header bool) Option {
	return func(c *Config) error { c.Header = header; return nil }
}

// WithNAValues overrides the set of strings treated as missing.
func WithNAValues(values []string) Option {
	return func(c *Config) error { c.NAValues = values; return nil }
}

// Read loads address as a CSV file into a Frame[*string]. A cell equal to
// one of the configured NA markers is represented as a nil *string; every
// other cell is a non-nil pointer to its raw field text, untouched.
//
// Read reports core.NotFound if address does not exist and
// core.InvalidConfig if the file is not well-formed CSV (ragged rows,
// unterminated quotes, ...).
func Read(address string, opts ...Option) (*dataframe.Frame[*string], error) {
	cfg := defaultConfig()
	if err := core.ApplyOptions(&cfg, opts...); err != nil {
		return nil, core.Wrap(core.InvalidConfig, "applying reader options", err)
	}

	file, err := os.Open(address)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.Wrap(core.NotFound, fmt.Sprintf("input address %q", address), err)
		}
		return nil, core.Wrap(core.InvalidConfig, fmt.Sprintf("opening input address %q", address), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = cfg.Delimiter

	var headers []string
	if cfg.Header {
		headers, err = reader.Read()
		if err != nil {
			return nil, core.Wrap(core.InvalidConfig, "reading header row", err)
		}
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, core.Wrap(core.InvalidConfig, "reading csv record", err)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, core.New(core.EmptyInput, fmt.Sprintf("input address %q has no data rows", address))
	}

	ncols := len(records[0])
	if headers == nil {
		headers = make([]string, ncols)
		for i := range headers {
			headers[i] = fmt.Sprintf("col_%d", i)
		}
	}

	na := make(map[string]struct{}, len(cfg.NAValues))
	for _, v := range cfg.NAValues {
		na[v] = struct{}{}
	}

	columns := make([]*dataframe.Column[*string], len(headers))
	for ci, name := range headers {
		values := make([]*string, len(records))
		for ri, record := range records {
			if ci >= len(record) {
				return nil, core.New(core.InvalidConfig, fmt.Sprintf("row %d is missing column %q", ri, name))
			}
			cell := record[ci]
			if _, missing := na[cell]; missing {
				values[ri] = nil
				continue
			}
			v := cell
			values[ri] = &v
		}
		columns[ci] = dataframe.NewColumn(name, values)
	}

	return dataframe.NewFrame(columns...)
}
