// Command mealctl inspects the grocery pipeline from the command line.
//
// Usage:
//
//	mealctl classify "3 carottes" "20 cl lait"
//	mealctl list --db ./data/mealplanner.db --user <user-id>
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/mealplanner/internal/grocery"
	"github.com/mmynk/mealplanner/internal/planner"
	"github.com/mmynk/mealplanner/internal/storage/sqlite"
	"github.com/mmynk/mealplanner/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "mealctl",
		Short:        "Inspect the meal planner grocery pipeline",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "YAML catalog overriding the embedded one")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newClassifyCmd(opts), newListCmd(opts))
	return root
}

func (o *rootOptions) catalog() (*grocery.Catalog, error) {
	if o.catalogPath == "" {
		return grocery.DefaultCatalog(), nil
	}
	return grocery.LoadCatalog(o.catalogPath)
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	return logging.New(w, logging.Options{Level: logging.ParseLevel(o.logLevel)})
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <ingredient>...",
		Short: "Show how ingredient lines are parsed and where they are shelved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			classifier := grocery.NewClassifier(catalog)
			out := cmd.OutOrStdout()
			for _, raw := range args {
				ing := grocery.Parse(raw)
				fmt.Fprintf(out, "%s\n  key:     %s\n  unit:    %s\n  qty:     %s\n  section: %s\n",
					raw, ing.Key, ing.Unit, quantity(ing), classifier.Classify(ing.Key, nil))
			}
			return nil
		},
	}
}

func quantity(ing grocery.Ingredient) string {
	switch {
	case ing.MassGrams > 0:
		return grocery.FormatMass(ing.MassGrams)
	case ing.VolumeML > 0:
		return grocery.FormatVolume(ing.VolumeML)
	case ing.Quantity != nil:
		return strconv.FormatFloat(*ing.Quantity, 'f', -1, 64)
	default:
		return "-"
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var dbPath, userID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build the grocery list of a user's planned week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			store, err := sqlite.New(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			builder := grocery.NewBuilder(
				planner.NewWeek(store, userID),
				store,
				grocery.UserID(userID),
				grocery.WithCatalog(catalog),
				grocery.WithLogger(opts.logger(cmd.ErrOrStderr())),
			)
			sections, err := builder.Generate(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sections) == 0 {
				fmt.Fprintln(out, "Nothing planned.")
				return nil
			}
			for _, s := range sections {
				fmt.Fprintln(out, s.Title)
				for _, it := range s.Items {
					fmt.Fprintf(out, "  [ ] %s\n", it.Label)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "./data/mealplanner.db", "SQLite database path")
	cmd.Flags().StringVar(&userID, "user", "", "user ID whose week is listed")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
