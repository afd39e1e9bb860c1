package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/bliss/pkg/palette"
)

var (
	buildLayouts string
	buildOut     string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build palette files from layout configurations",
	Long: `Build resolves every layout file matching the --layouts glob into a
palette JSON file under --out. Resolution failures never abort a build:
failed cells are emitted as visible NOT FOUND placeholders and the errors
are reported at the end.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine := newEngine(cmd.Context())

		paths, err := doublestar.FilepathGlob(buildLayouts)
		if err != nil {
			fatal("Bad layout glob", err)
		}
		if len(paths) == 0 {
			fatal("No layouts", fmt.Errorf("glob %q matched nothing", buildLayouts))
		}

		if err := os.MkdirAll(buildOut, 0755); err != nil {
			fatal("Failed to create output directory", err)
		}

		builder := palette.NewBuilder(engine.Resolver(), palette.WithLogger(slog.Default()))

		failed := 0
		for _, path := range paths {
			layout, err := palette.LoadLayout(path)
			if err != nil {
				fatal("Failed to load layout", err)
			}

			res := builder.Build(layout)
			for _, msg := range res.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", layout.Name, msg)
			}
			failed += len(res.Errors)

			for label, matches := range res.Matches {
				if len(matches) > 1 {
					slog.Warn("ambiguous label, first match used",
						"layout", layout.Name, "label", label, "candidates", len(matches))
				}
			}

			outPath := filepath.Join(buildOut, paletteFileName(layout.Name))
			if err := writePalette(outPath, res.Palette); err != nil {
				fatal("Failed to write palette", err)
			}
			fmt.Printf("Palette '%s' written to %s (%d cells).\n",
				layout.Name, outPath, len(res.Palette.Cells))
		}

		if failed > 0 {
			fmt.Fprintf(os.Stderr, "%d cell(s) did not resolve; see NOT FOUND placeholders.\n", failed)
		}
	},
}

// paletteFileName derives a filesystem-safe name from the palette name.
func paletteFileName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return safe + ".json"
}

func writePalette(path string, p palette.Palette) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildLayouts, "layouts", "palettes/**/*.yaml", "Glob of layout YAML files")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", ".", "Output directory for palette JSON files")
}
