package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/db"
	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection
// for the hot store operations.
var preparedStatements = map[string]string{
	"insert_company": `INSERT INTO companies (id, name, status, hiring_manager, doc, position, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MIN(position), 0) - 1 FROM companies), $6, $7)`,
	"update_company": `UPDATE companies SET name = $1, status = $2, hiring_manager = $3, doc = $4, updated_at = $5 WHERE id = $6`,
	"get_company":    `SELECT doc FROM companies WHERE id = $1`,
	"delete_company": `DELETE FROM companies WHERE id = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS companies (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	status         TEXT NOT NULL,
	hiring_manager TEXT NOT NULL DEFAULT '',
	doc            JSONB NOT NULL,
	position       DOUBLE PRECISION NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS recent_searches (
	kind        TEXT NOT NULL,
	query       TEXT NOT NULL,
	searched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (kind, query)
);

CREATE TABLE IF NOT EXISTS map_view (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	lat  DOUBLE PRECISION NOT NULL,
	lng  DOUBLE PRECISION NOT NULL,
	zoom INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_companies_status ON companies(status);
CREATE INDEX IF NOT EXISTS idx_companies_position ON companies(position);
CREATE INDEX IF NOT EXISTS idx_recent_searches_at ON recent_searches(searched_at);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) CreateCompany(ctx context.Context, c model.Company) (*model.Company, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.RegistrationDate == "" {
		c.RegistrationDate = time.Now().UTC().Format("2006-01-02")
	}

	docJSON, err := json.Marshal(c)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal company")
	}

	now := time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO companies (id, name, status, hiring_manager, doc, position, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MIN(position), 0) - 1 FROM companies), $6, $7)`,
		c.ID, c.Name, string(c.Status), c.HiringManager, docJSON, now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert company")
	}
	return &c, nil
}

func (s *PostgresStore) UpdateCompany(ctx context.Context, c model.Company) error {
	if c.ID == "" {
		return eris.New("postgres: update company without id")
	}

	docJSON, err := json.Marshal(c)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal company")
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE companies SET name = $1, status = $2, hiring_manager = $3, doc = $4, updated_at = $5 WHERE id = $6`,
		c.Name, string(c.Status), c.HiringManager, docJSON, time.Now().UTC(), c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update company %s", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "id %s", c.ID)
	}
	return nil
}

func (s *PostgresStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	var docJSON []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM companies WHERE id = $1`, id).Scan(&docJSON)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get company %s", id)
	}

	var c model.Company
	if err := json.Unmarshal(docJSON, &c); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal company")
	}
	return &c, nil
}

func (s *PostgresStore) DeleteCompany(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete company %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "id %s", id)
	}
	return nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context, filter Filter) ([]model.Company, error) {
	query := `SELECT doc FROM companies WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, string(filter.Status))
		argIdx++
	}
	if filter.HiringManager != "" {
		query += fmt.Sprintf(` AND hiring_manager = $%d`, argIdx)
		args = append(args, filter.HiringManager)
		argIdx++
	}
	query += ` ORDER BY position ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list companies")
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var docJSON []byte
		if err := rows.Scan(&docJSON); err != nil {
			return nil, eris.Wrap(err, "postgres: scan company")
		}
		var c model.Company
		if err := json.Unmarshal(docJSON, &c); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal company")
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: list companies iterate")
	}
	return applyFilter(companies, filter), nil
}

func (s *PostgresStore) ReplaceAll(ctx context.Context, companies []model.Company) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres: begin replace")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM companies`); err != nil {
		return eris.Wrap(err, "postgres: clear companies")
	}

	now := time.Now().UTC()
	for i, c := range companies {
		if c.ID == "" {
			return eris.Errorf("postgres: company at position %d has no id", i)
		}
		docJSON, err := json.Marshal(c)
		if err != nil {
			return eris.Wrap(err, "postgres: marshal company")
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO companies (id, name, status, hiring_manager, doc, position, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID, c.Name, string(c.Status), c.HiringManager, docJSON, float64(i), now, now,
		); err != nil {
			return eris.Wrapf(err, "postgres: insert company %s", c.ID)
		}
	}
	return eris.Wrap(tx.Commit(ctx), "postgres: commit replace")
}

func (s *PostgresStore) SaveRecentSearch(ctx context.Context, rs model.RecentSearch) error {
	if rs.QueryText == "" {
		return nil
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO recent_searches (kind, query, searched_at) VALUES ($1, $2, $3)
		 ON CONFLICT (kind, query) DO UPDATE SET searched_at = excluded.searched_at`,
		string(rs.Kind), rs.QueryText, time.Now().UTC(),
	)
	if err != nil {
		return eris.Wrap(err, "postgres: save recent search")
	}

	_, err = s.pool.Exec(ctx,
		`DELETE FROM recent_searches WHERE (kind, query) NOT IN (
			SELECT kind, query FROM recent_searches ORDER BY searched_at DESC LIMIT $1
		)`,
		recentSearchLimit,
	)
	return eris.Wrap(err, "postgres: trim recent searches")
}

func (s *PostgresStore) ListRecentSearches(ctx context.Context) ([]model.RecentSearch, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT kind, query FROM recent_searches ORDER BY searched_at DESC LIMIT $1`,
		recentSearchLimit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list recent searches")
	}
	defer rows.Close()

	var out []model.RecentSearch
	for rows.Next() {
		var rs model.RecentSearch
		var kind string
		if err := rows.Scan(&kind, &rs.QueryText); err != nil {
			return nil, eris.Wrap(err, "postgres: scan recent search")
		}
		rs.Kind = model.SearchKind(kind)
		out = append(out, rs)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list recent searches iterate")
}

func (s *PostgresStore) GetMapView(ctx context.Context) (*model.MapView, error) {
	var v model.MapView
	err := s.pool.QueryRow(ctx, `SELECT lat, lng, zoom FROM map_view WHERE id = 1`).
		Scan(&v.Center.Lat, &v.Center.Lng, &v.Zoom)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get map view")
	}
	return &v, nil
}

func (s *PostgresStore) SetMapView(ctx context.Context, v model.MapView) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO map_view (id, lat, lng, zoom) VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET lat = excluded.lat, lng = excluded.lng, zoom = excluded.zoom`,
		v.Center.Lat, v.Center.Lng, v.Zoom,
	)
	return eris.Wrap(err, "postgres: set map view")
}
