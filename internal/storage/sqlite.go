// Package storage provides SQLite-based persistence for canvases.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-canvas/internal/canvas"
)

// ErrNotFound reports that no canvas with the requested name is stored.
var ErrNotFound = errors.New("storage: canvas not found")

// Store manages the SQLite database connection for canvas persistence.
type Store struct {
	db *sql.DB
}

// CanvasInfo summarizes a stored canvas for listings.
type CanvasInfo struct {
	ID        int64
	Name      string
	Width     int
	Items     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanvasStats contains aggregated statistics for a stored canvas.
type CanvasStats struct {
	Name             string
	Width            int
	Items            int
	SizeAdjusted     int // How many placements had their size corrected
	PositionAdjusted int // How many placements had their position corrected
	Height           int // Bottom edge of the lowest placement
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS canvases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_canvases_name ON canvases(name);

		CREATE TABLE IF NOT EXISTS placements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			canvas_id INTEGER NOT NULL REFERENCES canvases(id) ON DELETE CASCADE,
			component TEXT NOT NULL,
			title TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			z INTEGER NOT NULL,
			size_adjusted INTEGER NOT NULL DEFAULT 0,
			position_adjusted INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_placements_canvas ON placements(canvas_id, z);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCanvas stores a canvas and its placements, replacing any stored
// canvas with the same name. The whole save runs in one transaction, so a
// failed save leaves the previous version intact. Returns the canvas row ID.
func (s *Store) SaveCanvas(c *canvas.Canvas) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after a successful commit

	// Upsert the canvas row
	var canvasID int64
	err = tx.QueryRow("SELECT id FROM canvases WHERE name = ?", c.Name).Scan(&canvasID)
	switch {
	case err == sql.ErrNoRows:
		result, insErr := tx.Exec(
			"INSERT INTO canvases (name, width) VALUES (?, ?)",
			c.Name, c.Width,
		)
		if insErr != nil {
			return 0, fmt.Errorf("storage: cannot insert canvas: %w", insErr)
		}
		canvasID, insErr = result.LastInsertId()
		if insErr != nil {
			return 0, fmt.Errorf("storage: cannot get inserted ID: %w", insErr)
		}
	case err != nil:
		return 0, fmt.Errorf("storage: cannot query canvas: %w", err)
	default:
		_, updErr := tx.Exec(
			"UPDATE canvases SET width = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			c.Width, canvasID,
		)
		if updErr != nil {
			return 0, fmt.Errorf("storage: cannot update canvas: %w", updErr)
		}
	}

	// Replace the placements wholesale; z records the draw order
	if _, err := tx.Exec("DELETE FROM placements WHERE canvas_id = ?", canvasID); err != nil {
		return 0, fmt.Errorf("storage: cannot clear placements: %w", err)
	}

	for z, item := range c.Items() {
		_, err := tx.Exec(
			`INSERT INTO placements
			 (canvas_id, component, title, x, y, width, height, z, size_adjusted, position_adjusted)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			canvasID,
			item.Component,
			item.Title,
			item.Box.X,
			item.Box.Y,
			item.Box.W,
			item.Box.H,
			z,
			boolToInt(item.SizeAdjusted),
			boolToInt(item.PositionAdjusted),
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save placement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}

	return canvasID, nil
}

// LoadCanvas loads a stored canvas with its placements in draw order.
// Returns ErrNotFound when no canvas with that name exists.
func (s *Store) LoadCanvas(name string) (*canvas.Canvas, error) {
	var canvasID int64
	var width int
	err := s.db.QueryRow(
		"SELECT id, width FROM canvases WHERE name = ?", name,
	).Scan(&canvasID, &width)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query canvas: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT component, title, x, y, width, height, size_adjusted, position_adjusted
		 FROM placements
		 WHERE canvas_id = ?
		 ORDER BY z`,
		canvasID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query placements: %w", err)
	}
	defer rows.Close()

	var items []canvas.Item
	for rows.Next() {
		var item canvas.Item
		var sizeAdj, posAdj int
		if err := rows.Scan(
			&item.Component,
			&item.Title,
			&item.Box.X,
			&item.Box.Y,
			&item.Box.W,
			&item.Box.H,
			&sizeAdj,
			&posAdj,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		// Item IDs are per-session; renumber in draw order on load
		item.ID = len(items) + 1
		item.SizeAdjusted = sizeAdj != 0
		item.PositionAdjusted = posAdj != 0
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	c := canvas.New(name, width)
	c.Restore(items)
	return c, nil
}

// ListCanvases retrieves all stored canvases with their item counts,
// most recently updated first.
func (s *Store) ListCanvases() ([]CanvasInfo, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.name, c.width, COUNT(p.id), c.created_at, c.updated_at
		 FROM canvases c
		 LEFT JOIN placements p ON p.canvas_id = c.id
		 GROUP BY c.id
		 ORDER BY c.updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query canvases: %w", err)
	}
	defer rows.Close()

	var infos []CanvasInfo
	for rows.Next() {
		var info CanvasInfo
		var createdAt, updatedAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.Width, &info.Items, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			info.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.CreatedAt = parsed
			}
		}
		switch v := updatedAt.(type) {
		case time.Time:
			info.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.UpdatedAt = parsed
			}
		}

		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteCanvas removes a stored canvas and its placements.
// Returns ErrNotFound when no canvas with that name exists.
func (s *Store) DeleteCanvas(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after a successful commit

	var canvasID int64
	err = tx.QueryRow("SELECT id FROM canvases WHERE name = ?", name).Scan(&canvasID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query canvas: %w", err)
	}

	// Delete placements explicitly; CASCADE needs a per-connection pragma
	// the pooled driver does not guarantee
	if _, err := tx.Exec("DELETE FROM placements WHERE canvas_id = ?", canvasID); err != nil {
		return fmt.Errorf("storage: cannot delete placements: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM canvases WHERE id = ?", canvasID); err != nil {
		return fmt.Errorf("storage: cannot delete canvas: %w", err)
	}

	return tx.Commit()
}

// Stats retrieves aggregated statistics for a stored canvas.
// Returns ErrNotFound when no canvas with that name exists.
func (s *Store) Stats(name string) (*CanvasStats, error) {
	stats := &CanvasStats{Name: name}

	var canvasID int64
	err := s.db.QueryRow(
		"SELECT id, width FROM canvases WHERE name = ?", name,
	).Scan(&canvasID, &stats.Width)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query canvas: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(size_adjusted), 0),
		        COALESCE(SUM(position_adjusted), 0),
		        COALESCE(MAX(y + height), 0)
		 FROM placements WHERE canvas_id = ?`,
		canvasID,
	).Scan(&stats.Items, &stats.SizeAdjusted, &stats.PositionAdjusted, &stats.Height)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get canvas stats: %w", err)
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
