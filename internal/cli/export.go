package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/huelab/internal/colour"
	"github.com/jmylchreest/huelab/internal/export"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	format    string
	themeName string
	output    string
	comments  bool
	semantic  bool
	bothModes bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <theme.json>",
		Short: "Export a saved theme to another format",
		Long: `Export a theme from its canonical JSON form to a presentation format.

The input is the JSON document written by 'generate -f json' or
'extract -f json'; it is the only format that round-trips. The other
formats (css, qss, tailwind, svg) are one-way presentation formats.

With --both-modes the export includes a dark palette: the one embedded in
the input document if present, otherwise one derived from the light
palette.

Examples:
  # CSS custom properties with a metadata header
  huelab export theme.json -f css --comments

  # Qt style sheet with semantic role variables
  huelab export theme.json -f qss --semantic

  # Tailwind config with light and dark scales
  huelab export theme.json -f tailwind --both-modes

  # SVG swatch strip
  huelab export theme.json -f svg -o palette.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.FormatCSS), "export format (css, qss, tailwind, json, svg)")
	cmd.Flags().StringVar(&opts.themeName, "theme-name", "", "override the theme name from the input document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.comments, "comments", false, "include a metadata header comment")
	cmd.Flags().BoolVar(&opts.semantic, "semantic", false, "include semantic role names (primary, secondary, accent, background)")
	cmd.Flags().BoolVar(&opts.bothModes, "both-modes", false, "include both light and dark palettes")

	return cmd
}

func runExport(cmd *cobra.Command, opts *exportOptions, inputPath string) error {
	logger := newLogger(cmd)

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 - User-specified theme path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	theme, err := export.ParseTheme(data)
	if err != nil {
		return err
	}

	logger.Debug("loaded theme", "name", theme.Name, "colours", theme.Palette.Len())

	name := theme.Name
	if opts.themeName != "" {
		name = opts.themeName
	}

	dark := theme.Dark
	if opts.bothModes && dark == nil {
		dark = colour.DeriveVariant(theme.Palette, colour.ModeDark)
		logger.Debug("derived missing dark variant")
	}

	out, err := export.Render(export.Request{
		Palette:   theme.Palette,
		Dark:      dark,
		ThemeName: name,
		Format:    format,
		Options: export.Options{
			Comments:         opts.comments,
			SemanticNames:    opts.semantic,
			IncludeBothModes: opts.bothModes,
		},
	})
	if err != nil {
		return err
	}

	return writeOutput(cmd, opts.output, out)
}
