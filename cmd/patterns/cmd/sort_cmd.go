package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patterns/internal/core"
	"patterns/internal/parser"
	"patterns/internal/sorting"
	"patterns/pkg/product"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		by    string
		write bool
	)

	sortCmd := &cobra.Command{
		Use:   "sort <catalog.md>",
		Short: "Sort a markdown product catalog with a strategy",
		Long: `Sort prints the products of a markdown catalog ordered by the chosen
strategy. With --write the list items are reordered in the file itself;
headings and prose around them are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.startLogging(false); err != nil {
				return err
			}
			defer a.stopLogging()
			if !cmd.Flags().Changed("by") && len(a.cfg.Strategies) > 0 {
				by = a.cfg.Strategies[0]
			}
			strategy, err := sorting.ByName(by)
			if err != nil {
				return err
			}

			var sorted []product.Product
			if write {
				sorted, err = core.SortCatalogFile(args[0], strategy)
			} else {
				var catalog []product.Product
				catalog, err = parser.ParseCatalogFile(args[0])
				if err == nil {
					sorted, err = sorting.NewSorter(strategy).SortProducts(catalog)
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sorting products by %s.\n", strategy.Name())
			for _, p := range sorted {
				fmt.Fprintln(out, p.String())
			}
			if write {
				fmt.Fprintf(cmd.ErrOrStderr(), "catalog: %d products rewritten in %s\n", len(sorted), args[0])
			}
			return nil
		},
	}

	sortCmd.Flags().StringVar(&by, "by", "price", "sorting strategy (price, popularity)")
	sortCmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the catalog file in sorted order")
	return sortCmd
}
