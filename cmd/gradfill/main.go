package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cncutils/gradfill/internal/config"
	"github.com/cncutils/gradfill/internal/gradient"
	"github.com/cncutils/gradfill/internal/output"
	"github.com/cncutils/gradfill/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.2.0"

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List infill patterns and how they are handled",
	Long: `Lists every known Cura infill pattern together with the gradient
mode used for it. Patterns marked unsupported abort a run.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

var rootCmd = &cobra.Command{
	Use:   "gradfill [gcode file]",
	Short: "Add gradient infill to sliced G-code",
	Long: `Rewrites a Cura-sliced G-code file so infill extrusion tapers from
a maximum at the walls down to a minimum further inside the part.

The input must be sliced with relative extrusion enabled, walls
printed before infill, and infill line connection disabled.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(patternsCmd)

	rootCmd.Flags().StringP("output", "o", "", "Output file (default: <input>_gradient.gcode, \"-\" for stdout)")
	rootCmd.Flags().StringP("pattern", "p", "", "Infill pattern the file was sliced with (required)")
	rootCmd.Flags().Float64P("thickness", "t", 6.0, "Gradient distance in mm (max to min flow)")
	rootCmd.Flags().IntP("discretization", "d", 4, "Sub-segments per gradient band (linear patterns)")
	rootCmd.Flags().Float64("max-flow", 350, "Maximum extrusion flow in percent")
	rootCmd.Flags().Float64("min-flow", 50, "Minimum extrusion flow in percent")
	rootCmd.Flags().Float64("short-flow", 350, "Flow in percent for moves too short to subdivide")
	rootCmd.Flags().Bool("gradual-speed", false, "Also gradate feed rate with the flow")
	rootCmd.Flags().Float64("max-over-speed", 200, "Maximum over-speed factor in percent")
	rootCmd.Flags().Float64("min-over-speed", 60, "Minimum over-speed factor in percent")
	rootCmd.Flags().String("boundary", "inner", "Wall bounding the gradient: inner or outer")
	rootCmd.Flags().Bool("infill-connect", false, "Set if the file was sliced with connected infill lines (unsupported)")
	rootCmd.Flags().Bool("infill-before-walls", false, "Set if the file was sliced with infill before walls (unsupported)")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress bar and summary")

	viper.BindPFlag("pattern", rootCmd.Flags().Lookup("pattern"))
	viper.BindPFlag("thickness", rootCmd.Flags().Lookup("thickness"))
	viper.BindPFlag("discretization", rootCmd.Flags().Lookup("discretization"))
	viper.BindPFlag("max_flow", rootCmd.Flags().Lookup("max-flow"))
	viper.BindPFlag("min_flow", rootCmd.Flags().Lookup("min-flow"))
	viper.BindPFlag("short_flow", rootCmd.Flags().Lookup("short-flow"))
	viper.BindPFlag("gradual_speed", rootCmd.Flags().Lookup("gradual-speed"))
	viper.BindPFlag("max_over_speed", rootCmd.Flags().Lookup("max-over-speed"))
	viper.BindPFlag("min_over_speed", rootCmd.Flags().Lookup("min-over-speed"))
	viper.BindPFlag("boundary", rootCmd.Flags().Lookup("boundary"))
	viper.BindPFlag("infill_connect", rootCmd.Flags().Lookup("infill-connect"))
	viper.BindPFlag("infill_before_walls", rootCmd.Flags().Lookup("infill-before-walls"))
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runPatterns(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.RenderPatternTable())
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg := config.C
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	lines := strings.Split(string(data), "\n")

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = output.DefaultPath(input)
	}

	quiet := config.GetQuiet()
	eng := gradient.NewEngine(cfg.Options())

	start := time.Now()
	var rewritten []string
	var stats gradient.Stats

	if !quiet && outPath != output.Stdout && ui.ShowProgress() {
		err = ui.RunWithProgress(func(onProgress func(done, total int)) error {
			eng.OnProgress(onProgress)
			var perr error
			rewritten, stats, perr = eng.Process(lines)
			return perr
		})
	} else {
		rewritten, stats, err = eng.Process(lines)
	}
	if err != nil {
		return err
	}

	if err := output.Write(outPath, rewritten); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(os.Stderr, ui.RenderSummary(input, outPath, stats, time.Since(start)))
	}
	return nil
}

func main() {
	rootCmd.Version = version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		os.Exit(1)
	}
}
