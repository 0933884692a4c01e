package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"datasmith/table"
)

//Summary maps filenames to emitted row counts, in generation order
type Summary struct {
	Order  []string
	Counts map[string]int
	Total  int
}

//Runner generates a set of recipes into OutDir and accumulates the run
//summary. With Workers > 1 recipes are generated in parallel; because every
//recipe owns an independent derived random stream the emitted files are
//byte identical to a sequential run. The first error cancels the run.
type Runner struct {
	OutDir  string
	Cfg     Config
	Workers int
	Recipes []Recipe
	Log     zerolog.Logger
}

//Run generates and writes every recipe and returns the summary
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	recipes := r.Recipes
	if recipes == nil {
		recipes = All()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	counts := make([]int, len(recipes))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i := range recipes {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			t, err := recipes[i].Generate(r.Cfg)
			if err != nil {
				return fmt.Errorf("failed to generate %v : %w", recipes[i].Filename, err)
			}
			rows, err := table.WriteTSV(r.OutDir, t)
			if err != nil {
				return fmt.Errorf("failed to write %v : %w", recipes[i].Filename, err)
			}
			counts[i] = rows
			r.Log.Info().
				Str("file", recipes[i].Filename).
				Int("rows", rows).
				Dur("took", time.Since(start)).
				Msg("table written")
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Counts: make(map[string]int, len(recipes))}
	for i := range recipes {
		summary.Order = append(summary.Order, recipes[i].Filename)
		summary.Counts[recipes[i].Filename] = counts[i]
		summary.Total += counts[i]
	}
	return summary, nil
}
