package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/chased/internal/app"
	"github.com/five82/chased/internal/catalog"
	"github.com/five82/chased/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "chased: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	prefsPath  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "chased",
		Short: "CHASED storefront in your terminal",
		Long: `chased is a terminal storefront for pre-loved fashion.

Run without arguments to browse the catalog, fill a cart and inspect
product images.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				Verbose:    flags.verbose,
			})
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/chased/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/chased/prefs.toml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newSearchCmd(flags), newCatalogCmd(flags))
	return root
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Show which category a search routes to",
		Example: `  chased search "blue jeans"
  chased search gold ring`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(flags.configPath)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			id, ok := cat.Match(query)
			if !ok {
				return fmt.Errorf("no category matches %q", query)
			}
			label := id
			if c, found := cat.Category(id); found && c.Label != "" {
				label = c.Label
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, label)
			return nil
		},
	}
}

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(flags.configPath)
			if err != nil {
				return err
			}
			products := cat.Products
			if category != "" {
				if _, ok := cat.Category(category); !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				products = cat.ByCategory(category)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tNAME\tPRICE")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Category, p.Name, p.PriceText)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list one category")
	return cmd
}

func loadCatalog(configPath string) (catalog.Catalog, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load config: %w", err)
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
