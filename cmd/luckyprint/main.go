package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"luckyprint/internal/buildinfo"
	"luckyprint/internal/features"
	"luckyprint/internal/lucky"
	"luckyprint/internal/manifest"
	"luckyprint/internal/selector"
)

var (
	// Global flags
	verbose      bool
	manifestPath string

	// Logger
	logger *zap.Logger
)

// rootCmd prints the output selected by the compiled feature set.
var rootCmd = &cobra.Command{
	Use:   "luckyprint",
	Short: "Print the lines selected by this binary's compiled feature set",
	Long: `luckyprint writes one or two lines to stdout, chosen entirely by the
feature tags the binary was built with:

  (no tags)            Hello, world!
  -tags print42        42
  -tags lucky          Hello, world! plus a lucky number in [1, 100]
  -tags allfeatures    42 plus a lucky number

Build with -tags luckydefault to turn the lucky line on by default, and add
nodefaults to opt back out. The feature set is fixed at build time; nothing
changes it at runtime.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger. Production config logs to stderr, keeping
		// stdout as exactly the contract lines.
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPrint,
}

// featuresCmd shows compiled and declared feature state.
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show which features this binary was built with",
	Long: `Lists every known feature with its compiled state and the default policy
this binary was built under. With --manifest, also shows the declared feature
surface from a manifest file.`,
	RunE: runFeatures,
}

// versionCmd prints the tool version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the luckyprint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	featuresCmd.Flags().StringVar(&manifestPath, "manifest", "", "Check compiled state against a feature manifest")

	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(versionCmd)
}

// runPrint is the program's whole observable behavior: resolve once, write
// once, exit 0.
func runPrint(cmd *cobra.Command, args []string) error {
	set := features.Compiled()
	logger.Debug("resolved feature set",
		zap.Bool("print42", set.Print42),
		zap.Bool("lucky", set.Lucky),
		zap.String("default_policy", string(features.DefaultPolicy())))

	lines := selector.Resolve(set, lucky.NewSource())
	return selector.Print(cmd.OutOrStdout(), lines)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	set := features.Compiled()

	fmt.Fprintf(out, "Default policy: %s\n", features.DefaultPolicy())
	for _, f := range features.Known() {
		state := "disabled"
		if set.Enabled(f) {
			state = "enabled"
		}
		fmt.Fprintf(out, "  %-8s %s\n", f, state)
	}

	if manifestPath == "" {
		return nil
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Declared in manifest:")
	for _, e := range m.Features {
		def := ""
		if e.Default {
			def = " (default)"
		}
		fmt.Fprintf(out, "  %-8s %s%s\n", e.Name, e.Description, def)
	}
	for _, g := range m.Groups {
		fmt.Fprintf(out, "  group %s enables %s\n", g.Name, strings.Join(g.Features, ", "))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
