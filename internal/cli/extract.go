package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/huelab/internal/colour"
	"github.com/jmylchreest/huelab/internal/export"
	"github.com/jmylchreest/huelab/internal/image"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type extractOptions struct {
	colours   int
	format    string
	output    string
	preview   bool
	mode      colour.Mode
	themeName string
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract dominant colours from an image",
		Long: `Extract the dominant colours of an image by k-means clustering.

Pixels are grid-sampled for large images, clustered in RGB space with
k-means++ seeding, and the cluster centroids are returned ordered by how
much of the image they cover. Images with fewer distinct colours than
requested yield fewer swatches rather than duplicates.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 colours (default)
  huelab extract wallpaper.jpg

  # Extract 5 colours with terminal previews
  huelab extract --preview -k 5 wallpaper.png

  # Extract into a canonical JSON theme
  huelab extract -f json -o theme.json wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "k", 8, "number of colours to extract (1-256)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, hex, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show ANSI colour previews in the terminal")
	cmd.Flags().Var(newEnumFlag(&opts.mode, colour.ModeLight, colour.ParseMode, "mode"),
		"mode", "theme mode recorded on the extracted palette (light, dark)")
	cmd.Flags().StringVar(&opts.themeName, "theme-name", "Theme", "theme name used in JSON output")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *extractOptions, imagePath string) error {
	logger := newLogger(cmd)

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor := colour.NewExtractor()
	result, err := extractor.Extract(img, opts.colours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	logger.Debug("extracted colours", "count", len(result))

	out, err := formatExtraction(opts, result)
	if err != nil {
		return err
	}

	return writeOutput(cmd, opts.output, out)
}

func formatExtraction(opts *extractOptions, result colour.ExtractionResult) (string, error) {
	switch strings.ToLower(opts.format) {
	case "table":
		return extractionTable(result, opts.preview), nil
	case "hex":
		hexes := make([]string, len(result))
		for i, s := range result {
			hexes[i] = s.Colour.Hex()
		}
		return strings.Join(hexes, "\n") + "\n", nil
	case "json":
		return export.Render(export.Request{
			Palette:   result.Palette(opts.mode),
			ThemeName: opts.themeName,
			Format:    export.FormatJSON,
		})
	default:
		return "", fmt.Errorf("unknown output format: %q (valid formats: table, hex, json)", opts.format)
	}
}

func extractionTable(result colour.ExtractionResult, preview bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extracted %d colours\n\n", len(result))

	table := NewTable([]string{"#", "Hex", "Coverage"})
	for i, s := range result {
		table.AddRow([]string{
			fmt.Sprintf("%d", i),
			s.Colour.Hex(),
			fmt.Sprintf("%.1f%%", s.Frequency*100),
		})
	}
	b.WriteString(table.Render())

	if preview && term.IsTerminal(int(os.Stdout.Fd())) {
		b.WriteByte('\n')
		for _, s := range result {
			b.WriteString(colour.PreviewWithText(s.Colour, s.Colour.Hex(), 12))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
