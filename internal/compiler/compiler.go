// Package compiler runs the record pipeline: classified lines feed the macro
// and annotation tables, complete records are built into tables, and
// Finalize applies field macros and fallback types.
//
// All mutable state of one run lives in a Context; nothing is global.
package compiler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"record2ddl/internal/annotation"
	"record2ddl/internal/macro"
	"record2ddl/internal/schema"
	"record2ddl/internal/source"
	"record2ddl/internal/types"
)

// ErrInputNotFound is returned when the record file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Options configures a compilation run.
type Options struct {
	// DefaultColumns replaces schema.DefaultColumns when non-nil.
	DefaultColumns []schema.DefaultColumn
	Logger         *zap.Logger
}

// Result is the output of one run.
type Result struct {
	Tables       []*schema.Table
	Report       *schema.Report
	Unterminated []source.Pending
}

// Context carries the state of one compilation run.
type Context struct {
	Macros      *macro.Table
	Annotations *annotation.Table
	Report      *schema.Report

	scanner *source.Scanner
	builder *schema.Builder
	log     *zap.Logger

	tables []*schema.Table
	index  map[string]int

	result *Result
}

func New(opts Options) *Context {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &Context{
		Macros:      macro.NewTable(),
		Annotations: annotation.NewTable(),
		Report:      schema.NewReport(),
		scanner:     source.NewScanner(),
		log:         log,
		index:       make(map[string]int),
	}
	c.builder = schema.NewBuilder(c.Annotations, c.Report, log)
	if opts.DefaultColumns != nil {
		c.builder.Defaults = opts.DefaultColumns
	}
	return c
}

// Feed pushes one raw input line through the pipeline.
func (c *Context) Feed(line string) {
	st, ok := c.scanner.Feed(line)
	if !ok {
		return
	}
	c.handle(st)
}

func (c *Context) handle(st source.Statement) {
	switch st.Kind {
	case source.KindDefine, source.KindField:
		keyword := macro.DefineKeyword
		if st.Kind == source.KindField {
			keyword = macro.FieldKeyword
		}
		name, value, ok := macro.ParseStatement(st.Text, keyword)
		if !ok {
			c.log.Debug("unparsable macro statement", zap.Int("line", st.Line), zap.String("text", st.Text))
			return
		}
		if st.Kind == source.KindDefine {
			c.Macros.Define(name, value)
		} else {
			c.Macros.Field(name, value)
		}

	case source.KindAnnotation:
		if e, ok := annotation.Parse(st.Text); ok {
			c.Annotations.Put(e)
		}

	case source.KindRecord:
		name, fields, ok := schema.ParseRecord(st.Text)
		if !ok {
			c.log.Debug("unparsable record statement", zap.Int("line", st.Line), zap.String("text", st.Text))
			return
		}
		c.store(c.builder.Build(name, fields))
	}
}

// store keeps tables in first-declaration order; a redeclared record
// replaces the earlier table in place.
func (c *Context) store(t *schema.Table) {
	if i, ok := c.index[t.Name]; ok {
		c.tables[i] = t
		return
	}
	c.index[t.Name] = len(c.tables)
	c.tables = append(c.tables, t)
}

// Finalize closes the input and produces the result. Calling it again
// returns the same result.
func (c *Context) Finalize() *Result {
	if c.result != nil {
		return c.result
	}

	var pending []source.Pending
	if p, ok := c.scanner.Close(); ok {
		c.log.Warn("record statement never closed, dropped",
			zap.Int("line", p.Line),
			zap.String("text", p.Text))
		pending = append(pending, p)
	}

	c.Macros.Resolve()
	for _, t := range c.tables {
		for _, col := range t.Columns {
			c.applyFieldMacro(t.Name, col)
			col.Meaning = schema.AnalyzeMeaning(col.Name, col.Comment)
		}
	}

	c.result = &Result{
		Tables:       c.tables,
		Report:       c.Report,
		Unterminated: pending,
	}
	return c.result
}

// applyFieldMacro overrides a column from its -field entry, then falls back
// to varchar(255) when the column still has no type. A field entry with a
// remark marks the column as documented, so the fallback is not reported.
func (c *Context) applyFieldMacro(record string, col *schema.Column) {
	documented := false
	if value, ok := c.Macros.FieldValue(col.Name); ok {
		remark, hint := macro.SplitFieldValue(value)
		documented = remark != ""
		if hint != "" {
			base, precision := types.SplitPrecision(hint)
			if res, ok := types.Resolve(base, precision); ok {
				if col.Type != "" && col.Type != res.Type {
					c.Report.Add(schema.TypeInconsistency, record, col.Name)
				}
				col.Type, col.Precision = res.Type, res.Precision
			}
		}
		if remark != "" {
			col.Comment = remark
		}
	}

	if col.Type == "" {
		col.Type, col.Precision = schema.FallbackType, schema.FallbackPrecision
		if !documented {
			c.Report.Add(schema.MissingType, record, col.Name)
		}
	}
}

// Compile reads every line from r and finalizes.
func Compile(r io.Reader, opts Options) (*Result, error) {
	c := New(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		c.Feed(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return c.Finalize(), nil
}

// CompileFile compiles the record file at path.
func CompileFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return Compile(f, opts)
}
