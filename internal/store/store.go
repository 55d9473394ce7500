// Package store persists the partner collection and the small pieces
// of application state around it: recent prospecting searches and the
// saved map camera.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// ErrNotFound is returned when a partner id has no record.
var ErrNotFound = eris.New("store: partner not found")

// recentSearchLimit caps the persisted prospecting query history.
const recentSearchLimit = 5

// Filter narrows a partner listing. Name matching is accent and case
// insensitive; Document matches on digits only.
type Filter struct {
	Name          string       `json:"name,omitempty"`
	Document      string       `json:"document,omitempty"`
	Status        model.Status `json:"status,omitempty"`
	HiringManager string       `json:"hiringManager,omitempty"`
}

// Store defines the persistence interface for the partner CRM.
type Store interface {
	// Partners
	CreateCompany(ctx context.Context, c model.Company) (*model.Company, error)
	UpdateCompany(ctx context.Context, c model.Company) error
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	ListCompanies(ctx context.Context, filter Filter) ([]model.Company, error)
	// ReplaceAll swaps the whole collection atomically (backup restore).
	ReplaceAll(ctx context.Context, companies []model.Company) error

	// Recent prospecting searches, newest first, deduplicated, capped.
	SaveRecentSearch(ctx context.Context, s model.RecentSearch) error
	ListRecentSearches(ctx context.Context) ([]model.RecentSearch, error)

	// Map camera state
	GetMapView(ctx context.Context) (*model.MapView, error)
	SetMapView(ctx context.Context, v model.MapView) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
