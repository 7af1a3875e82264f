package app

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"

	"github.com/NaithaniAR/10Knodes/internal/ctxlog"
	"github.com/NaithaniAR/10Knodes/internal/fsutil"
	"github.com/NaithaniAR/10Knodes/internal/hierarchy"
)

// Run executes one generation pass: enumerate the hierarchy, validate the
// result, serialize it, write the output file, and print the two summary
// lines. The pass is single-threaded and deterministic; the output file is
// the only side effect besides the summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	nodes := hierarchy.NewGenerator(a.shape).Generate()

	leaves := 0
	for _, n := range nodes {
		if n.IsLeaf() {
			leaves++
		}
	}
	a.logger.Debug("Hierarchy enumerated.", "records", len(nodes), "leaves", leaves)

	if err := hierarchy.Validate(nodes); err != nil {
		return errors.Wrap(err, "generated dataset failed validation")
	}

	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding dataset")
	}
	data = append(data, '\n')

	if err := fsutil.WriteFile(ctx, OutputPath, data); err != nil {
		return err
	}
	a.logger.Info("Dataset written.", "path", OutputPath, "records", len(nodes), "bytes", len(data))

	fmt.Fprintf(a.outW, "Generated %d nodes (including intermediate nodes)\n", len(nodes))
	fmt.Fprintln(a.outW, "data.json file created successfully!")
	return nil
}
