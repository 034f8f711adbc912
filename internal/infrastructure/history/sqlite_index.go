package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/pkg/filesystem"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// SQLiteIndex mirrors history entries into a SQLite database so they can be searched.
// The text log stays the canonical record; the index is best-effort.
type SQLiteIndex struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// DefaultIndexPath is ~/.smartcmd/history.db.
func DefaultIndexPath() string {
	return filepath.Join(filesystem.UserHomeDir(), domain.AppDirName, domain.HistoryIndexName)
}

// OpenSQLiteIndex creates (or opens) the index database at path.
func OpenSQLiteIndex(path string) (*SQLiteIndex, error) {
	if path == "" {
		path = DefaultIndexPath()
	}
	path = filesystem.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	index := &SQLiteIndex{db: db, path: path}
	if err := index.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init index: %w", err)
	}
	return index, nil
}

func (s *SQLiteIndex) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		session_id TEXT,
		query TEXT NOT NULL,
		command TEXT NOT NULL
	);`)
	return err
}

// Record inserts a new entry.
func (s *SQLiteIndex) Record(entry domain.IndexedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO entries (timestamp, session_id, query, command) VALUES (?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
		entry.SessionID,
		entry.Query,
		entry.Command,
	)
	return err
}

// Search returns the most recent entries whose query or command contains keyword,
// listed oldest first. An empty keyword matches everything.
func (s *SQLiteIndex) Search(keyword string, limit int) ([]domain.IndexedEntry, error) {
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, session_id, query, command FROM entries")
	var args []interface{}
	if keyword != "" {
		builder.WriteString(" WHERE query LIKE ? OR command LIKE ?")
		args = append(args, "%"+keyword+"%", "%"+keyword+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.IndexedEntry
	for rows.Next() {
		var rec domain.IndexedEntry
		var ts string
		var session sql.NullString
		if err := rows.Scan(&ts, &session, &rec.Query, &rec.Command); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = t
		}
		rec.SessionID = session.String
		entries = append(entries, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Path returns the sqlite database path.
func (s *SQLiteIndex) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteIndex) Close() error {
	return s.db.Close()
}

var _ ports.HistoryIndex = (*SQLiteIndex)(nil)
