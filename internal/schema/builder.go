package schema

import (
	"go.uber.org/zap"

	"record2ddl/internal/annotation"
	"record2ddl/internal/types"
)

// Builder turns parsed records into tables. It consumes the annotation table
// of the current record and reports problems into Report.
type Builder struct {
	Defaults    []DefaultColumn
	Annotations *annotation.Table
	Report      *Report
	Log         *zap.Logger
}

// NewBuilder wires a builder with the standard default columns.
func NewBuilder(ann *annotation.Table, report *Report, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		Defaults:    DefaultColumns,
		Annotations: ann,
		Report:      report,
		Log:         log,
	}
}

// Build resolves one record. Fields declared twice are reported as
// duplicates; the last value wins and the first position is kept. Default
// columns come first, and a record field of the same name replaces the
// default in place. Unconsumed annotations become the table comment and the
// annotation table is cleared.
func (b *Builder) Build(name string, raw []RawField) *Table {
	fields := b.dedupe(name, raw)

	t := &Table{Name: name}
	for _, d := range b.Defaults {
		t.Columns = append(t.Columns, &Column{
			Name:      d.Name,
			Type:      d.Type,
			Precision: d.Precision,
			Comment:   d.Comment,
		})
	}

	for _, f := range fields {
		col := b.resolveField(name, f)
		if i := indexOf(t.Columns, col.Name); i >= 0 {
			t.Columns[i] = col
			continue
		}
		t.Columns = append(t.Columns, col)
	}

	t.Comment = annotation.TableComment(b.Annotations.Remaining())
	b.Annotations.Reset()

	b.Log.Debug("record built",
		zap.String("record", name),
		zap.Int("columns", len(t.Columns)),
		zap.String("comment", t.Comment))
	return t
}

func (b *Builder) dedupe(record string, raw []RawField) []RawField {
	pos := make(map[string]int, len(raw))
	var out []RawField
	for _, f := range raw {
		if i, ok := pos[f.Name]; ok {
			b.Report.Add(DuplicateField, record, f.Name)
			out[i] = f
			continue
		}
		pos[f.Name] = len(out)
		out = append(out, f)
	}
	return out
}

// resolveField merges the annotation hint and the record value. An
// annotation type beats the record value; when both resolve to different
// canonical types the field is reported as inconsistent. A column left
// without a type is typed later, once field macros are known.
func (b *Builder) resolveField(record string, f RawField) *Column {
	col := &Column{Name: f.Name}
	token, precision := f.Value, ""

	if e, ok := b.Annotations.Take(f.Name); ok {
		col.Comment = e.Remark
		if e.TypeHint != "" {
			hint, hintPrecision := types.SplitPrecision(e.TypeHint)
			fromValue, valueOK := types.Resolve(f.Value, hintPrecision)
			fromHint, hintOK := types.Resolve(hint, "")
			if valueOK && hintOK && fromValue.Type != fromHint.Type {
				b.Report.Add(TypeInconsistency, record, f.Name)
				b.Log.Debug("annotation type differs from record value",
					zap.String("record", record),
					zap.String("field", f.Name),
					zap.String("annotation", fromHint.Type),
					zap.String("value", fromValue.Type))
			}
			token, precision = hint, hintPrecision
		}
	}

	if res, ok := types.Resolve(token, precision); ok {
		col.Type = res.Type
		col.Precision = res.Precision
	}
	return col
}

func indexOf(cols []*Column, name string) int {
	for i, c := range cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}
