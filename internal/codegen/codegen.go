// Package codegen renders compiled tables through a dialect and writes the
// resulting scripts.
package codegen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"record2ddl/internal/dialect"
	"record2ddl/internal/schema"
)

// ErrOutputWrite is returned when a rendered script cannot be written.
var ErrOutputWrite = errors.New("failed to write output")

// Render produces the script for tables: every statement ends with ";" and
// tables are separated by a blank line.
func Render(d dialect.Dialect, tables []*schema.Table, opts dialect.Options) string {
	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, stmt := range d.CreateTable(t, opts) {
			b.WriteString(stmt)
			b.WriteString(";\n")
		}
	}
	return b.String()
}

// Statements flattens the CREATE statements of every table, in order.
func Statements(d dialect.Dialect, tables []*schema.Table, opts dialect.Options) []string {
	var stmts []string
	for _, t := range tables {
		stmts = append(stmts, d.CreateTable(t, opts)...)
	}
	return stmts
}

// Write stores text at path, creating parent directories.
func Write(path, text string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}

// Emit writes text to path and then echoes it to w.
func Emit(w io.Writer, path, text string) error {
	if err := Write(path, text); err != nil {
		return err
	}
	if w != nil {
		fmt.Fprintln(w, text)
	}
	return nil
}
