package cli

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jmylchreest/huelab/internal/colour"
	"github.com/jmylchreest/huelab/internal/export"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// generateOptions holds the flag values for one generate invocation.
type generateOptions struct {
	base              string
	scheme            colour.Scheme
	count             int
	mode              colour.Mode
	random            bool
	jitter            bool
	seed              int64
	wcag              string
	background        string
	preserveCharacter bool
	simulate          colour.Deficiency
	variant           bool
	format            string
	output            string
	preview           bool
	themeName         string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a colour palette from a base colour and scheme",
		Long: `Generate a colour palette from a base colour and a colour-theory scheme.

Schemes derive related hues from the base colour: monochromatic, analogous,
complementary, split-complementary, triadic and tetradic. The requested
colour count (2-12) is clamped; split-complementary, triadic and tetradic
always yield 3, 3 and 4 colours respectively.

Optionally the palette is adjusted to a WCAG contrast target, previewed
through a colour-vision-deficiency simulation, and paired with a derived
dark (or light) variant.

Examples:
  # Five-colour monochromatic palette from the default base
  huelab generate

  # Triadic palette from a base colour
  huelab generate -b '#3498DB' -s triadic

  # AA-compliant palette, preserving hue and saturation
  huelab generate -b '#AAAAAA' --wcag aa --preserve-character

  # Dark-mode palette with its light variant, as canonical JSON
  huelab generate -b '#3498DB' --mode dark --variant -f json

  # Deuteranopia preview of an analogous palette
  huelab generate -s analogous --simulate deuteranopia --preview

  # Regenerate with a small deterministic perturbation
  huelab generate -b '#3498DB' --jitter --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", colour.DefaultBaseHex, "base colour (hex)")
	cmd.Flags().VarP(newEnumFlag(&opts.scheme, colour.SchemeMonochromatic, colour.ParseScheme, "scheme"),
		"scheme", "s", "colour scheme (monochromatic, analogous, complementary, split-complementary, triadic, tetradic)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", colour.DefaultCount, "number of colours (2-12, clamped; fixed-count schemes override)")
	cmd.Flags().Var(newEnumFlag(&opts.mode, colour.ModeLight, colour.ParseMode, "mode"),
		"mode", "theme mode (light, dark)")
	cmd.Flags().BoolVar(&opts.random, "random", false, "use a random base colour")
	cmd.Flags().BoolVar(&opts.jitter, "jitter", false, "perturb the base colour slightly for a fresh palette from the same settings")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for --random/--jitter (0 = time-based)")
	cmd.Flags().StringVar(&opts.wcag, "wcag", "off", "adjust colours to a WCAG contrast target (off, aa, aaa)")
	cmd.Flags().StringVar(&opts.background, "background", "auto", "reference background for contrast adjustment (auto or hex)")
	cmd.Flags().BoolVar(&opts.preserveCharacter, "preserve-character", true, "keep hue and saturation fixed when adjusting for contrast")
	cmd.Flags().Var(newEnumFlag(&opts.simulate, colour.DeficiencyNone, colour.ParseDeficiency, "deficiency"),
		"simulate", "colour-vision-deficiency preview (none, protanopia, deuteranopia, tritanopia, grayscale)")
	cmd.Flags().BoolVar(&opts.variant, "variant", false, "also derive the opposite-mode variant")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, hex, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show ANSI colour previews in the terminal")
	cmd.Flags().StringVar(&opts.themeName, "theme-name", "Theme", "theme name used in JSON output")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	logger := newLogger(cmd)

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	base, err := resolveBase(opts, rng)
	if err != nil {
		return err
	}

	logger.Debug("generating palette", "base", base.Hex(), "scheme", opts.scheme, "count", opts.count)

	palette := colour.Generate(base, opts.scheme, opts.count)
	if opts.mode == colour.ModeDark {
		palette = colour.DeriveVariant(palette, colour.ModeDark)
	}

	if opts.wcag != "off" {
		req, err := buildAdjustmentRequest(opts)
		if err != nil {
			return err
		}
		palette = colour.AdjustPalette(palette, req)
		logger.Debug("adjusted palette for contrast", "target", opts.wcag)
	}

	display := palette
	if opts.simulate != colour.DeficiencyNone {
		// Simulation is a non-destructive preview; the simulated view is
		// what gets displayed, the source palette stays untouched.
		display = colour.SimulatePalette(palette, opts.simulate)
		logger.Debug("simulating colour vision deficiency", "kind", opts.simulate)
	}

	var dark *colour.Palette
	if opts.variant {
		dark = colour.DeriveVariant(palette, palette.Mode.Opposite())
	}

	out, err := formatPalette(opts, display, dark)
	if err != nil {
		return err
	}

	return writeOutput(cmd, opts.output, out)
}

// resolveBase determines the base colour from the flags: explicit hex,
// random, and/or jittered.
func resolveBase(opts *generateOptions, rng *rand.Rand) (colour.Colour, error) {
	if opts.random {
		return colour.Random(rng), nil
	}

	base, err := colour.ParseHex(opts.base)
	if err != nil {
		return colour.Colour{}, err
	}
	if opts.jitter {
		base = colour.Jitter(base, rng)
	}
	return base, nil
}

func buildAdjustmentRequest(opts *generateOptions) (colour.AdjustmentRequest, error) {
	req := colour.AdjustmentRequest{PreserveCharacter: opts.preserveCharacter}

	switch strings.ToLower(opts.wcag) {
	case "aa":
		req.TargetLevel = colour.LevelAA
	case "aaa":
		req.TargetLevel = colour.LevelAAA
	default:
		return req, fmt.Errorf("unknown WCAG target: %q (valid targets: off, aa, aaa)", opts.wcag)
	}

	if opts.background != "" && !strings.EqualFold(opts.background, "auto") {
		bg, err := colour.ParseHex(opts.background)
		if err != nil {
			return req, err
		}
		req.Background = &bg
	}

	return req, nil
}

// formatPalette renders the palette per the requested output format.
func formatPalette(opts *generateOptions, palette, dark *colour.Palette) (string, error) {
	switch strings.ToLower(opts.format) {
	case "table":
		return paletteTable(palette, opts.preview), nil
	case "hex":
		return strings.Join(palette.Hex(), "\n") + "\n", nil
	case "json":
		return export.Render(export.Request{
			Palette:   palette,
			Dark:      dark,
			ThemeName: opts.themeName,
			Format:    export.FormatJSON,
			Options: export.Options{
				SemanticNames:    true,
				IncludeBothModes: dark != nil,
			},
		})
	default:
		return "", fmt.Errorf("unknown output format: %q (valid formats: table, hex, json)", opts.format)
	}
}

// paletteTable renders the palette listing with contrast metadata, plus
// ANSI swatches when requested and the output is a terminal.
func paletteTable(p *colour.Palette, preview bool) string {
	if p.Len() == 0 {
		return "Empty palette\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s palette (%s), %d colours\n\n", p.Scheme, p.Mode, p.Len())

	table := NewTable([]string{"#", "Hex", "Contrast", "WCAG", "Adjusted from"})
	for i, e := range p.Entries {
		original := ""
		if e.Adjusted != nil {
			original = e.Colour.Hex()
		}
		table.AddRow([]string{
			fmt.Sprintf("%d", i),
			e.Value().Hex(),
			fmt.Sprintf("%.1f:1", e.Contrast),
			string(e.Level),
			original,
		})
	}
	b.WriteString(table.Render())

	if preview && term.IsTerminal(int(os.Stdout.Fd())) {
		b.WriteByte('\n')
		for _, e := range p.Entries {
			b.WriteString(colour.PreviewWithText(e.Value(), e.Value().Hex(), 12))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// writeOutput writes the rendered text to the output file or stdout.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
