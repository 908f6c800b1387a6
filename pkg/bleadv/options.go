package bleadv

import (
	"context"

	"github.com/d21d3q/gobleadv/internal/assigned"
	internalopts "github.com/d21d3q/gobleadv/internal/options"
)

// AnalyzeOptions configures parsing.
type AnalyzeOptions struct {
	// TablesPath points to a YAML overlay of assigned numbers merged on top
	// of the built-in tables.
	TablesPath string
	// Tables, when set, takes precedence over TablesPath.
	Tables *assigned.Tables
}

func (opts AnalyzeOptions) toInternal(ctx context.Context) (context.Context, error) {
	tables := opts.Tables
	if tables == nil && opts.TablesPath != "" {
		loaded, err := assigned.Load(opts.TablesPath)
		if err != nil {
			return ctx, err
		}
		tables = loaded
	}
	return internalopts.WithTables(ctx, tables), nil
}
