package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/prospect"
	"github.com/partnerhub/partnerhub-cli/internal/store"
	"github.com/partnerhub/partnerhub-cli/pkg/oracle"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		path := cfg.Store.Path
		if path == "" {
			path = "partnerhub.db"
		}
		st, err := store.NewSQLite(path)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close() //nolint:errcheck
			return nil, err
		}
		return st, nil
	case "postgres":
		st, err := store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close() //nolint:errcheck
			return nil, err
		}
		return st, nil
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func initOracle() (oracle.Client, error) {
	if cfg.Anthropic.Key == "" {
		return nil, eris.New("anthropic API key is required (PARTNERHUB_ANTHROPIC_KEY)")
	}
	return oracle.NewClient(cfg.Anthropic.Key,
		oracle.WithModel(cfg.Anthropic.Model),
		oracle.WithMaxTokens(int64(cfg.Anthropic.MaxTokens)),
	), nil
}

func initSearcher() (*prospect.Searcher, error) {
	client, err := initOracle()
	if err != nil {
		return nil, err
	}
	return prospect.NewSearcher(prospect.NewOracleClient(client)), nil
}

func loadOutreachTemplates() (prospect.OutreachTemplates, error) {
	if cfg.Outreach.TemplatesPath == "" {
		return prospect.DefaultOutreachTemplates(), nil
	}
	return prospect.LoadOutreachTemplates(cfg.Outreach.TemplatesPath)
}
