package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/tatjam/direct-rf/internal/analysis"
	"github.com/tatjam/direct-rf/internal/array"
	"github.com/tatjam/direct-rf/internal/config"
	"github.com/tatjam/direct-rf/internal/display"
	"github.com/tatjam/direct-rf/internal/transform"
)

var (
	configFile string
	width      int
	height     int
	palette    string
	source     string
	scaleMode  string
	shift      bool
	style      string
)

// main registers the plotting commands and executes the root command. Any
// failure is terminal: cobra reports it on stderr and the process exits
// non-zero.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rfplot",
		Short: "terminal plots for direct-rf array dumps",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "plot width in cells")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "plot height in cells")
	rootCmd.PersistentFlags().StringVar(&source, "source", "auto", "source format (binary|csv)")

	seriesCmd := &cobra.Command{
		Use:     "series [file...]",
		Aliases: []string{"plot-series"},
		Short:   "plot arrays as overlaid line series",
		Args:    cobra.ArbitraryArgs,
		RunE:    plotSeries,
	}
	seriesCmd.Flags().BoolVar(&shift, "shift", true, "center the zero-frequency element")
	seriesCmd.Flags().StringVar(&style, "style", config.DefaultStyle, "series style (line|braille)")

	heatmapCmd := &cobra.Command{
		Use:     "heatmap [file]",
		Aliases: []string{"plot-heatmap"},
		Short:   "plot a 2D array as a color-mapped heatmap",
		Args:    cobra.ExactArgs(1),
		RunE:    plotHeatmap,
	}
	heatmapCmd.Flags().BoolVar(&shift, "shift", true, "center the zero-frequency row")
	heatmapCmd.Flags().StringVar(&scaleMode, "scale", config.DefaultScale, "magnitude scale (none|db|log10)")
	heatmapCmd.Flags().StringVar(&palette, "palette", config.DefaultPalette, "colormap (viridis|inferno|gray)")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [file]",
		Short: "plot the magnitude spectrum of a 1D array",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSpectrum,
	}
	spectrumCmd.Flags().StringVar(&scaleMode, "scale", "none", "magnitude scale (none|db)")
	spectrumCmd.Flags().StringVar(&style, "style", config.DefaultStyle, "series style (line|braille)")

	infoCmd := &cobra.Command{
		Use:   "info [file...]",
		Short: "describe array files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  describeArrays,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "dump an array to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(seriesCmd, heatmapCmd, spectrumCmd, infoCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// plotConfig merges config file values with CLI flags. Precedence: an
// explicitly set flag, then the config file, then the command's own flag
// default. The last tier matters for --scale, whose default differs per
// command (heatmap renders dB like the spectrogram script, spectrum stays
// unscaled because zero-padded spectra hold exact zeros).
func plotConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	fromFile := false
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		fromFile = true
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = palette
	}
	if f := cmd.Flags().Lookup("scale"); f != nil {
		if cmd.Flags().Changed("scale") {
			cfg.Scale = scaleMode
		} else if !fromFile {
			cfg.Scale = f.DefValue
		}
	}
	if cmd.Flags().Changed("style") {
		cfg.Style = style
	}
	return cfg, nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, err := plotConfig(cmd)
	if err != nil {
		return err
	}

	src, err := array.ParseSource(source)
	if err != nil {
		return err
	}

	var series []*array.Array
	var labels []string
	for _, path := range args {
		a, err := array.Load(path, src)
		if err != nil {
			return err
		}
		switch a.Rank() {
		case 1:
			series = append(series, a)
			labels = append(labels, path)
		case 2:
			// A table plots one series per column, matching how the
			// receiver dumps correlation columns side by side.
			for j := 0; j < a.Cols(); j++ {
				col := make([]float64, a.Rows())
				for i := 0; i < a.Rows(); i++ {
					col[i] = a.At(i, j)
				}
				ca, err := array.New(col, len(col))
				if err != nil {
					return err
				}
				series = append(series, ca)
				labels = append(labels, fmt.Sprintf("%s[%d]", path, j))
			}
		default:
			return fmt.Errorf("%w: cannot plot rank-%d array %s as series", array.ErrShape, a.Rank(), path)
		}
	}

	m, err := display.NewSeries(series, labels, shift, cfg.Style == "braille", cfg.RenderOptions())
	if err != nil {
		return err
	}
	return display.Run(m)
}

func plotHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := plotConfig(cmd)
	if err != nil {
		return err
	}

	src, err := array.ParseSource(source)
	if err != nil {
		return err
	}
	scale, err := transform.ParseScale(cfg.Scale)
	if err != nil {
		return err
	}

	a, err := array.Load(args[0], src)
	if err != nil {
		return err
	}

	m, err := display.NewHeatmap(a, args[0], shift, scale, cfg.RenderOptions())
	if err != nil {
		return err
	}
	return display.Run(m)
}

func plotSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := plotConfig(cmd)
	if err != nil {
		return err
	}

	src, err := array.ParseSource(source)
	if err != nil {
		return err
	}
	scale, err := transform.ParseScale(cfg.Scale)
	if err != nil {
		return err
	}

	a, err := array.Load(args[0], src)
	if err != nil {
		return err
	}

	spec, err := analysis.MagnitudeSpectrum(a)
	if err != nil {
		return err
	}
	spec, err = transform.FFTShift(spec, 0)
	if err != nil {
		return err
	}
	spec, err = transform.LogMagnitude(spec, scale)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("spectrum(%s)", args[0])
	m, err := display.NewSeries([]*array.Array{spec}, []string{label}, false, cfg.Style == "braille", cfg.RenderOptions())
	if err != nil {
		return err
	}
	return display.Run(m)
}

func describeArrays(cmd *cobra.Command, args []string) error {
	src, err := array.ParseSource(source)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tSHAPE\tELEMENTS\tMIN\tMAX\tMEAN\tPEAK@")

	for _, path := range args {
		a, err := array.Load(path, src)
		if err != nil {
			return err
		}
		if a.Len() == 0 {
			fmt.Fprintf(w, "%s\t%v\t0\t-\t-\t-\t-\n", path, a.Shape)
			continue
		}
		mean := floats.Sum(a.Data) / float64(a.Len())
		fmt.Fprintf(w, "%s\t%v\t%d\t%.6g\t%.6g\t%.6g\t%d\n",
			path,
			a.Shape,
			a.Len(),
			floats.Min(a.Data),
			floats.Max(a.Data),
			mean,
			floats.MaxIdx(a.Data),
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	src, err := array.ParseSource(source)
	if err != nil {
		return err
	}

	a, err := array.Load(args[0], src)
	if err != nil {
		return err
	}

	if a.Rank() != 1 && a.Rank() != 2 {
		return fmt.Errorf("%w: cannot export rank-%d array as CSV", array.ErrShape, a.Rank())
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	rows, cols := a.Shape[0], 1
	if a.Rank() == 2 {
		cols = a.Shape[1]
	}

	for i := 0; i < rows; i++ {
		row := make([]string, cols)
		for j := 0; j < cols; j++ {
			row[j] = strconv.FormatFloat(a.Data[i*cols+j], 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
