package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"patterns/internal/core"
	"patterns/internal/log"
	"patterns/internal/parser"
)

func newDemoCmd(a *app) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the observer, strategy and command walkthroughs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.startLogging(false); err != nil {
				return err
			}
			defer a.stopLogging()
			opts, err := a.demoOptions()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			entries, err := core.RunDemo(ctx, cmd.OutOrStdout(), opts)
			if err != nil {
				return err
			}
			if a.cfg.Journal != "" {
				if err := core.MergeRun(core.NewFileJournalStore(a.cfg.Journal), entries); err != nil {
					log.ErrorErr(log.CatJournal, "save failed", err, "file", a.cfg.Journal)
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "journal: %d entries written to %s\n", len(entries), a.cfg.Journal)
			}
			return nil
		},
	}

	demoCmd.Flags().String("catalog", "", "markdown product catalog (default: built-in)")
	demoCmd.Flags().String("script", "", "editor script file (default: built-in)")
	demoCmd.Flags().String("journal", "", "write the run transcript as JSON to this file")
	demoCmd.Flags().Int("discount", 20, "discount percentage announced to subscribers")
	demoCmd.Flags().StringSlice("strategy", []string{"price", "popularity"}, "sorting strategies to apply in order")
	demoCmd.Flags().StringSlice("section", nil, "run only these sections (observer, strategy, command)")
	return demoCmd
}

func (a *app) demoOptions() (core.DemoOptions, error) {
	opts := core.DefaultDemoOptions()
	opts.Subscribers = a.cfg.Subscribers
	opts.Discount = a.cfg.Discount

	strategies, err := a.cfg.SortingStrategies()
	if err != nil {
		return opts, err
	}
	opts.Strategies = strategies

	sections, err := a.cfg.Scenarios()
	if err != nil {
		return opts, err
	}
	opts.Sections = sections

	if a.cfg.Catalog != "" {
		catalog, err := parser.ParseCatalogFile(a.cfg.Catalog)
		if err != nil {
			return opts, err
		}
		log.Info(log.CatCatalog, "catalog loaded", "file", a.cfg.Catalog, "products", len(catalog))
		opts.Catalog = catalog
	}

	if a.cfg.Script != "" {
		data, err := os.ReadFile(a.cfg.Script)
		if err != nil {
			return opts, fmt.Errorf("reading script: %w", err)
		}
		opts.Script = string(data)
	}
	return opts, nil
}
