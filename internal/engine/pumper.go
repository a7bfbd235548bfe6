package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"record2ddl/internal/dialect"
	"record2ddl/internal/schema"
)

// PumpResult is the outcome of filling one table.
type PumpResult struct {
	TableName string
	Target    int
	Actual    int
	Status    string
	ErrorMsg  string
}

// Apply executes statements in one transaction, stopping at the first
// failure. onProgress is called after each successful statement.
func Apply(ctx context.Context, db *sql.DB, statements []string, onProgress func()) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d failed: %w\n%s", i+1, err, stmt)
		}
		if onProgress != nil {
			onProgress()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	tx = nil
	return nil
}

// SampleRows generates count rows for t, in column order.
func SampleRows(t *schema.Table, keys []dialect.KeyIndex, count int) [][]interface{} {
	primary := make(map[string]bool)
	for _, k := range keys {
		if k.Primary {
			primary[k.Column] = true
		}
	}

	rows := make([][]interface{}, 0, count)
	for i := 0; i < count; i++ {
		row := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = GenerateValue(c, t.Name, i, primary[c.Name])
		}
		rows = append(rows, row)
	}
	return rows
}

// SampleScript renders count INSERT statements per table with literal values.
func SampleScript(d dialect.Dialect, tables []*schema.Table, opts dialect.Options, count int) string {
	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		name := d.TableName(t, opts)
		cols := t.ColumnNames()
		for _, row := range SampleRows(t, opts.Keys, count) {
			b.WriteString(dialect.InsertStatement(d, name, cols, row))
			b.WriteString(";\n")
		}
	}
	return b.String()
}

// Pump inserts count sample rows into every table, one transaction per
// table. Failed rows are retried with fresh values up to ten times the target.
func Pump(ctx context.Context, db *sql.DB, d dialect.Dialect, tables []*schema.Table, opts dialect.Options, count int, log *zap.Logger, onProgress func()) ([]PumpResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var results []PumpResult

	for _, table := range tables {
		name := d.TableName(table, opts)

		// 기존 데이터 건수 확인
		initialCount, _ := countRows(ctx, db, name)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return results, fmt.Errorf("failed to begin transaction for %s: %w", name, err)
		}

		query := d.InsertQuery(name, table.ColumnNames())
		inserted, attempts := 0, 0
		offset := initialCount

		// 목표치 채우기 (실패 시 새 값으로 재시도)
		for inserted < count && attempts < count*10 {
			row := SampleRows(table, opts.Keys, 1)[0]
			regeneratePrimary(table, opts.Keys, row, offset+attempts)
			attempts++

			if _, err := tx.ExecContext(ctx, query, row...); err != nil {
				if attempts <= 3 {
					log.Debug("insert failed",
						zap.String("table", name),
						zap.Int("attempt", attempts),
						zap.Error(err))
				}
				continue
			}
			inserted++
			if onProgress != nil {
				onProgress()
			}
		}

		if err := tx.Commit(); err != nil {
			return results, fmt.Errorf("failed to commit %s: %w", name, err)
		}

		// 실제 들어간 개수 확인
		finalCount, _ := countRows(ctx, db, name)
		actual := finalCount - initialCount

		status := "OK"
		var errMsg string
		if actual < count {
			status = "MISSING DATA"
			if inserted == 0 && attempts > 0 {
				errMsg = "Failed to insert any rows. Run with --verbose for details."
			} else {
				errMsg = fmt.Sprintf("Only inserted %d out of %d.", actual, count)
			}
		}

		results = append(results, PumpResult{
			TableName: name,
			Target:    count,
			Actual:    actual,
			Status:    status,
			ErrorMsg:  errMsg,
		})
	}

	return results, nil
}

// regeneratePrimary gives primary key columns the sequence value seq so
// retries do not collide with rows already present.
func regeneratePrimary(t *schema.Table, keys []dialect.KeyIndex, row []interface{}, seq int) {
	for _, k := range keys {
		if !k.Primary {
			continue
		}
		for i, c := range t.Columns {
			if c.Name == k.Column {
				row[i] = GenerateValue(c, t.Name, seq, true)
			}
		}
	}
}

func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	return n, err
}

// VerifyInjection checks the actual row counts after pumping and returns results.
func VerifyInjection(ctx context.Context, db *sql.DB, results []PumpResult) []PumpResult {
	var verifiedResults []PumpResult
	for _, res := range results {
		currentCount, err := countRows(ctx, db, res.TableName)

		status := "VERIFIED_OK"
		if err != nil {
			status = fmt.Sprintf("VERIFY_FAIL: %v", err)
		} else if currentCount < res.Target {
			status = fmt.Sprintf("PARTIAL: %d/%d", currentCount, res.Target)
		}

		verifiedResults = append(verifiedResults, PumpResult{
			TableName: res.TableName,
			Target:    res.Target,
			Actual:    res.Actual,
			Status:    status,
			ErrorMsg:  res.ErrorMsg,
		})
	}
	return verifiedResults
}

// Clean empties every table in reverse order. Failures are logged and skipped.
func Clean(ctx context.Context, db *sql.DB, d dialect.Dialect, tables []*schema.Table, opts dialect.Options, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	total := len(tables)
	count := 0
	for i := len(tables) - 1; i >= 0; i-- {
		name := d.TableName(tables[i], opts)
		count++
		if _, err := tx.ExecContext(ctx, d.TruncateQuery(name)); err != nil {
			log.Warn("failed to clean table, continuing", zap.String("table", name), zap.Error(err))
		}
		if count%5 == 0 || count == total {
			log.Info("cleaning tables", zap.Int("done", count), zap.Int("total", total))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cleaning transaction: %w", err)
	}
	tx = nil
	return nil
}
