package cli

import (
	"context"
	"fmt"

	file "github.com/sia-ops/shiftsheet/internal/adapters/driven/config/file"
	"github.com/sia-ops/shiftsheet/internal/adapters/driven/opensearch"
	"github.com/sia-ops/shiftsheet/internal/adapters/driven/sheets"
	"github.com/sia-ops/shiftsheet/internal/core/services"
)

// app holds the wired service graph for one command invocation.
type app struct {
	cfg    file.Config
	export *services.ExportService
	search *services.SearchService
}

// buildApp loads configuration and wires both collaborators into the core
// services. Construction happens once per process; the services are
// passed by reference from here on.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := file.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	searcher, err := opensearch.NewClient(ctx, opensearch.Config{
		Endpoint: cfg.Search.Endpoint,
		Region:   cfg.Search.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("search client: %w", err)
	}

	sheet, err := sheets.NewStore(ctx, cfg.Sheet.SpreadsheetID, cfg.Sheet.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("sheet store: %w", err)
	}

	mode := services.MergeAppend
	if cfg.Export.FullRefresh {
		mode = services.MergeFullRefresh
	}

	export := services.NewExportService(searcher, sheet, services.ExportConfig{
		SheetName:        cfg.Sheet.SheetName,
		Mode:             mode,
		MaxRows:          cfg.Export.MaxRows,
		SearchLimit:      cfg.Search.Limit,
		DefaultNamespace: cfg.Search.DefaultNamespace,
	})
	search := services.NewSearchService(searcher, cfg.Search.DefaultNamespace, cfg.Search.Limit)

	return &app{cfg: cfg, export: export, search: search}, nil
}
