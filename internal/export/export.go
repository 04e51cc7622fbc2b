package export

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ziadkadry99/pillars/internal/catalog"
	"github.com/ziadkadry99/pillars/internal/db"
	"github.com/ziadkadry99/pillars/internal/progress"
)

// Exporter copies a catalog into a SQLite database for downstream tools.
// Only catalog content is written; reader state never leaves the process.
type Exporter struct {
	db       *db.DB
	reporter progress.Reporter
}

// New creates an exporter writing into database.
func New(database *db.DB, reporter progress.Reporter) *Exporter {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Exporter{db: database, reporter: reporter}
}

// Export replaces any previously exported catalog with c in one transaction.
func (e *Exporter) Export(ctx context.Context, c *catalog.Catalog) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"related_links", "stats", "sections", "pillars"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	pillars := c.All()
	e.reporter.Start(len(pillars))
	for i, p := range pillars {
		e.reporter.Update(i+1, p.Title)
		if err := insertPillar(ctx, tx, i, p); err != nil {
			return fmt.Errorf("exporting pillar %d: %w", p.ID, err)
		}
	}
	e.reporter.Finish()

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

func insertPillar(ctx context.Context, tx *sql.Tx, position int, p catalog.Pillar) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO pillars (id, position, title, description, icon, path, difficulty, difficulty_label, read_minutes, prerequisite, next_pillar)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, position, p.Title, p.Description, p.Icon, p.Path, int(p.Difficulty), p.Difficulty.Label(), p.ReadMinutes,
		nullInt(p.Prerequisite), nullInt(p.NextPillar),
	)
	if err != nil {
		return fmt.Errorf("inserting pillar: %w", err)
	}

	for i, s := range p.Sections {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (pillar_id, id, position, title, body) VALUES (?, ?, ?, ?, ?)`,
			p.ID, s.ID, i, s.Title, s.Body,
		); err != nil {
			return fmt.Errorf("inserting section %s: %w", s.ID, err)
		}
	}
	for i, st := range p.Stats {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stats (pillar_id, position, label, value) VALUES (?, ?, ?, ?)`,
			p.ID, i, st.Label, st.Value,
		); err != nil {
			return fmt.Errorf("inserting stat: %w", err)
		}
	}
	for i, l := range p.Related {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO related_links (pillar_id, position, title, url) VALUES (?, ?, ?, ?)`,
			p.ID, i, l.Title, l.URL,
		); err != nil {
			return fmt.Errorf("inserting related link: %w", err)
		}
	}
	return nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
