package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS companies (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	status         TEXT NOT NULL,
	hiring_manager TEXT NOT NULL DEFAULT '',
	doc            TEXT NOT NULL,
	position       REAL NOT NULL,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS recent_searches (
	kind        TEXT NOT NULL,
	query       TEXT NOT NULL,
	searched_at DATETIME NOT NULL DEFAULT (datetime('now')),
	PRIMARY KEY (kind, query)
);

CREATE TABLE IF NOT EXISTS map_view (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	lat  REAL NOT NULL,
	lng  REAL NOT NULL,
	zoom INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_companies_status ON companies(status);
CREATE INDEX IF NOT EXISTS idx_companies_position ON companies(position);
CREATE INDEX IF NOT EXISTS idx_recent_searches_at ON recent_searches(searched_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateCompany(ctx context.Context, c model.Company) (*model.Company, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.RegistrationDate == "" {
		c.RegistrationDate = time.Now().UTC().Format("2006-01-02")
	}

	docJSON, err := json.Marshal(c)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal company")
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO companies (id, name, status, hiring_manager, doc, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MIN(position), 0) - 1 FROM companies), ?, ?)`,
		c.ID, c.Name, string(c.Status), c.HiringManager, string(docJSON), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert company")
	}
	return &c, nil
}

func (s *SQLiteStore) UpdateCompany(ctx context.Context, c model.Company) error {
	if c.ID == "" {
		return eris.New("sqlite: update company without id")
	}

	docJSON, err := json.Marshal(c)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal company")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE companies SET name = ?, status = ?, hiring_manager = ?, doc = ?, updated_at = ? WHERE id = ?`,
		c.Name, string(c.Status), c.HiringManager, string(docJSON), time.Now().UTC(), c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update company %s", c.ID)
	}
	return checkRowsAffected(res, c.ID)
}

func (s *SQLiteStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	row := s.db.QueryRowContext(ctx, `SELECT doc FROM companies WHERE id = ?`, id)
	return scanCompany(row)
}

func (s *SQLiteStore) DeleteCompany(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete company %s", id)
	}
	return checkRowsAffected(res, id)
}

func (s *SQLiteStore) ListCompanies(ctx context.Context, filter Filter) ([]model.Company, error) {
	query := `SELECT doc FROM companies WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.HiringManager != "" {
		query += ` AND hiring_manager = ?`
		args = append(args, filter.HiringManager)
	}
	query += ` ORDER BY position ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list companies")
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: list companies iterate")
	}
	return applyFilter(companies, filter), nil
}

func (s *SQLiteStore) ReplaceAll(ctx context.Context, companies []model.Company) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin replace")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM companies`); err != nil {
		return eris.Wrap(err, "sqlite: clear companies")
	}

	now := time.Now().UTC()
	for i, c := range companies {
		if c.ID == "" {
			return eris.Errorf("sqlite: company at position %d has no id", i)
		}
		docJSON, err := json.Marshal(c)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal company")
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO companies (id, name, status, hiring_manager, doc, position, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, string(c.Status), c.HiringManager, string(docJSON), float64(i), now, now,
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert company %s", c.ID)
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit replace")
}

func (s *SQLiteStore) SaveRecentSearch(ctx context.Context, rs model.RecentSearch) error {
	if rs.QueryText == "" {
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recent_searches (kind, query, searched_at) VALUES (?, ?, ?)
		 ON CONFLICT (kind, query) DO UPDATE SET searched_at = excluded.searched_at`,
		string(rs.Kind), rs.QueryText, time.Now().UTC(),
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: save recent search")
	}

	// Keep only the newest entries.
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM recent_searches WHERE (kind, query) NOT IN (
			SELECT kind, query FROM recent_searches ORDER BY searched_at DESC LIMIT ?
		)`,
		recentSearchLimit,
	)
	return eris.Wrap(err, "sqlite: trim recent searches")
}

func (s *SQLiteStore) ListRecentSearches(ctx context.Context) ([]model.RecentSearch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, query FROM recent_searches ORDER BY searched_at DESC LIMIT ?`,
		recentSearchLimit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list recent searches")
	}
	defer rows.Close()

	var out []model.RecentSearch
	for rows.Next() {
		var rs model.RecentSearch
		var kind string
		if err := rows.Scan(&kind, &rs.QueryText); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan recent search")
		}
		rs.Kind = model.SearchKind(kind)
		out = append(out, rs)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list recent searches iterate")
}

func (s *SQLiteStore) GetMapView(ctx context.Context) (*model.MapView, error) {
	row := s.db.QueryRowContext(ctx, `SELECT lat, lng, zoom FROM map_view WHERE id = 1`)

	var v model.MapView
	err := row.Scan(&v.Center.Lat, &v.Center.Lng, &v.Zoom)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get map view")
	}
	return &v, nil
}

func (s *SQLiteStore) SetMapView(ctx context.Context, v model.MapView) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO map_view (id, lat, lng, zoom) VALUES (1, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET lat = excluded.lat, lng = excluded.lng, zoom = excluded.zoom`,
		v.Center.Lat, v.Center.Lng, v.Zoom,
	)
	return eris.Wrap(err, "sqlite: set map view")
}

// helpers

func checkRowsAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "id %s", id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanCompany(row scannable) (*model.Company, error) {
	var docJSON string
	err := row.Scan(&docJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan company")
	}

	var c model.Company
	if err := json.Unmarshal([]byte(docJSON), &c); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal company")
	}
	return &c, nil
}
