// Package cmd provides the root command and CLI setup for docfold.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/docfold/internal/adapter"
	"github.com/mouse-blink/docfold/internal/config"
	"github.com/mouse-blink/docfold/internal/controller"
	"github.com/mouse-blink/docfold/internal/domain"
	m "github.com/mouse-blink/docfold/internal/model"
)

var logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
var logger *zap.Logger
var workflow domain.Workflow
var ui controller.UI

// cfg is the configuration in effect for the current invocation: the config
// file overlaid with explicitly set flags.
var cfg = config.Default()

func init() {
	logger = newLogger(logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	loader := adapter.NewPackageLoader(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalGoFileAdapter())
	workflow = domain.NewWorkflow(loader, adapter.NewTreeStore(), ui, logger)
}

var verboseFlag bool
var configFlag string
var excludeFlags []string
var parallelFlag int
var outputFlag string
var formatFlag string
var nameFlag string
var checkFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docfold [paths...]",
		Short: "Build a documentation tree from Go package comments",
		Long:  rootLongDescription,
		Args:  cobra.ArbitraryArgs,
		// errors are reported by the UI
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verboseFlag {
				logLevel.SetLevel(zap.DebugLevel)
			}

			loaded, err := config.Load(".", configFlag)
			if err != nil {
				return err
			}

			cfg = applyFlags(cmd, loaded)
			logger.Debug("configuration", zap.Any("config", cfg))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Build(cmd.Context(), domain.BuildArgs{
				LoadArgs: loadArgs(args),
				Name:     cfg.Name,
				Output:   m.Path(cfg.Output),
				Format:   cfg.Format,
				Check:    cfg.Check,
			})
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every rename and merge")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ./"+config.FileName+" when present)")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude paths matching a glob (can be repeated)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", config.Default().Parallel, "number of packages parsed in parallel")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write the resolved tree to this file")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", config.Default().Format, "output format when the file extension does not decide it (yaml or json)")
	cmd.Flags().StringVar(&nameFlag, "name", config.Default().Name, "name of the project root")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "validate the tree after every merge")

	return cmd
}

const rootLongDescription = `Docfold reads the package comments of Go packages and builds a single
documentation tree from them. Package comments may carry directives:

  @doc-title <name>    rename the package in the tree
  @doc-group <name>    fold the package into the package called <name>
  @doc-preferred       let this package's comment describe the merged group
  @doc-type <kind>     accepted and ignored

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func newLogger(level zap.AtomicLevel) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true

	l, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return l
}

// applyFlags overrides c with every flag set on the command line.
func applyFlags(cmd *cobra.Command, c config.Config) config.Config {
	flags := cmd.Flags()

	if flags.Changed("exclude") {
		c.Exclude = excludeFlags
	}

	if flags.Changed("parallel") {
		c.Parallel = max(parallelFlag, 1)
	}

	if flags.Changed("output") {
		c.Output = outputFlag
	}

	if flags.Changed("format") {
		c.Format = formatFlag
	}

	if flags.Changed("name") {
		c.Name = nameFlag
	}

	if flags.Changed("check") {
		c.Check = checkFlag
	}

	return c
}

func loadArgs(args []string) domain.LoadArgs {
	return domain.LoadArgs{
		Paths:    parsePaths(args),
		Exclude:  cfg.Exclude,
		Parallel: cfg.Parallel,
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
