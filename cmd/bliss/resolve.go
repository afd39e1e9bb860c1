package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/bliss"
	"github.com/aretw0/bliss/pkg/core"
	"github.com/aretw0/bliss/pkg/resolve"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <term>",
	Short: "Resolve a gloss label or numeric id",
	Long: `Resolve a search term against the gloss dataset. A bare number is an
exact id lookup; any other text matches descriptions whole-word.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := newEngine(cmd.Context())

		res, err := engine.Search(args[0])
		if errors.Is(err, core.ErrNotFound) {
			fmt.Printf("No matches for %q.\n", args[0])
			os.Exit(1)
		}
		if err != nil {
			fatal("Search failed", err)
		}

		switch res.Kind {
		case resolve.SearchEmpty:
			fmt.Println("Nothing to search for.")
		case resolve.SearchID:
			// A fresh session has no compositions; fall back to the
			// dataset entry for the id itself.
			entry, err := engine.ResolveID(atoiOrDie(res.Term))
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No entry with id %s.\n", res.Term)
				os.Exit(1)
			}
			if err != nil {
				fatal("Lookup failed", err)
			}
			fmt.Printf("%d\t%s\n", entry.ID, entry.Description)
		case resolve.SearchLabel:
			for _, m := range res.Matches {
				fmt.Printf("%s\t%s\n", m.Tokens, m.Description)
			}
		}
	},
}

func atoiOrDie(s string) int {
	var id int
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
		fatal("Bad numeric term", err)
	}
	return id
}

// newEngine assembles an engine from the persistent dataset flags.
func newEngine(ctx context.Context) *bliss.Engine {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []bliss.Option{bliss.WithLogger(slog.Default())}
	if datasetFile != "" {
		opts = append(opts, bliss.WithDatasetFile(datasetFile))
	}
	if datasetURL != "" {
		opts = append(opts, bliss.WithDatasetURL(datasetURL))
	}
	return bliss.New(ctx, opts...)
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
