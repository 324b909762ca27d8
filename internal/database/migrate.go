package database

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tebaba-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Migrator reconciles the declared schema with the live database. Sync adds
// missing tables and columns; Migrate with destructive=true also drops
// tables and columns absent from the model. Each column-level statement is
// attempted independently so one failure does not abort the rest of the run.
type Migrator struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool, log: logger.WithComponent("migrator")}
}

// SyncSchema runs the additive reconciliation, safe for startup use.
func SyncSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return NewMigrator(pool).Sync(ctx)
}

func (m *Migrator) Sync(ctx context.Context) error {
	return m.Migrate(ctx, false)
}

func (m *Migrator) Migrate(ctx context.Context, destructive bool) error {
	existing, err := m.existingTables(ctx)
	if err != nil {
		return fmt.Errorf("inspect tables: %w", err)
	}

	declared := make(map[string]Table, len(Schema()))
	for _, t := range Schema() {
		declared[t.Name] = t
	}

	// Schema() is in dependency order, so missing tables can be created in
	// declaration order and FK targets always exist first.
	for _, t := range Schema() {
		if _, ok := existing[t.Name]; ok {
			continue
		}
		m.log.Info("creating table", zap.String("table", t.Name))
		if _, err := m.pool.Exec(ctx, BuildCreateTable(t)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}

	if destructive {
		for _, name := range extraNames(keys(declared), existing) {
			m.log.Warn("dropping obsolete table", zap.String("table", name))
			if _, err := m.pool.Exec(ctx, BuildDropTable(name)); err != nil {
				m.log.Error("drop table failed", zap.String("table", name), zap.Error(err))
			}
		}
	}

	for _, t := range Schema() {
		if _, ok := existing[t.Name]; !ok {
			continue // freshly created, already complete
		}
		if err := m.reconcileColumns(ctx, t, destructive); err != nil {
			return err
		}
	}

	// Idempotent via IF NOT EXISTS, so every run ensures them.
	for _, t := range Schema() {
		for _, column := range t.Indexes {
			if _, err := m.pool.Exec(ctx, BuildCreateIndex(t.Name, column)); err != nil {
				m.log.Error("create index failed",
					zap.String("table", t.Name), zap.String("column", column), zap.Error(err))
			}
		}
	}

	return nil
}

func (m *Migrator) reconcileColumns(ctx context.Context, t Table, destructive bool) error {
	existing, err := m.existingColumns(ctx, t.Name)
	if err != nil {
		return fmt.Errorf("inspect columns of %s: %w", t.Name, err)
	}

	declared := make(map[string]Column, len(t.Columns))
	for _, c := range t.Columns {
		declared[c.Name] = c
	}

	for _, c := range t.Columns {
		if _, ok := existing[c.Name]; ok {
			continue
		}
		m.log.Info("adding column", zap.String("table", t.Name), zap.String("column", c.Name))
		if _, err := m.pool.Exec(ctx, BuildAddColumn(t.Name, c)); err != nil {
			m.log.Error("add column failed",
				zap.String("table", t.Name), zap.String("column", c.Name), zap.Error(err))
		}
	}

	if destructive {
		for _, name := range extraNames(keys(declared), existing) {
			m.log.Warn("dropping obsolete column",
				zap.String("table", t.Name), zap.String("column", name))
			if _, err := m.pool.Exec(ctx, BuildDropColumn(t.Name, name)); err != nil {
				m.log.Error("drop column failed",
					zap.String("table", t.Name), zap.String("column", name), zap.Error(err))
			}
		}
	}

	return nil
}

func (m *Migrator) existingTables(ctx context.Context) (map[string]struct{}, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
	`
	rows, err := m.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables[name] = struct{}{}
	}
	return tables, rows.Err()
}

func (m *Migrator) existingColumns(ctx context.Context, table string) (map[string]struct{}, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
	`
	rows, err := m.pool.Query(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns[name] = struct{}{}
	}
	return columns, rows.Err()
}

/* DDL builders, kept free of database access. */

func BuildCreateTable(t Table) string {
	defs := make([]string, 0, len(t.Columns)+1+len(t.ForeignKeys))
	for _, c := range t.Columns {
		defs = append(defs, columnDDL(c))
	}
	if len(t.PrimaryKey) > 0 {
		defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(quoteAll(t.PrimaryKey), ", ")))
	}
	for _, fk := range t.ForeignKeys {
		def := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			strings.Join(quoteAll(fk.Columns), ", "),
			quoteIdent(fk.RefTable),
			strings.Join(quoteAll(fk.RefColumns), ", "))
		if fk.OnDelete != "" {
			def += " ON DELETE " + fk.OnDelete
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", quoteIdent(t.Name), strings.Join(defs, ",\n\t"))
}

func BuildAddColumn(table string, c Column) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", quoteIdent(table), columnDDL(c))
}

func BuildDropColumn(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", quoteIdent(table), quoteIdent(column))
}

func BuildDropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", quoteIdent(table))
}

func columnDDL(c Column) string {
	parts := []string{quoteIdent(c.Name), c.Type}
	if !c.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if c.Unique {
		parts = append(parts, "UNIQUE")
	}
	if c.Default != "" {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	return strings.Join(parts, " ")
}

func BuildCreateIndex(table, column string) string {
	name := fmt.Sprintf("idx_%s_%s", table, column)
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		quoteIdent(name), quoteIdent(table), quoteIdent(column))
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
	}
	return quoted
}

// extraNames returns the names present in existing but not declared, sorted
// so destructive runs are deterministic.
func extraNames(declared []string, existing map[string]struct{}) []string {
	declaredSet := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		declaredSet[name] = struct{}{}
	}
	extras := []string{}
	for name := range existing {
		if _, ok := declaredSet[name]; !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return extras
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
