package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/easyfmt/foundation/core/config"
	mdwerror "github.com/msto63/easyfmt/foundation/core/error"
	mdwlog "github.com/msto63/easyfmt/foundation/core/log"
	"github.com/msto63/easyfmt/foundation/utils/filex"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// EnvPrefix prefixes environment overrides of configuration keys.
const EnvPrefix = "EASYFMT"

// annotationStandalone marks commands that run without configuration or
// logger setup.
const annotationStandalone = "easyfmt/standalone"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	inputFile string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the easyfmt command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "easyfmt",
		Short: "String helpers and display post-processing on the command line",
		Long: `easyfmt applies the stringx text helpers and the render post-processor
to command line arguments or standard input.

Commands:
  render     - shorten namespaces and fold case (format spec s/f + L/U)
  run        - run a pipeline defined in the configuration file
  pipelines  - list configured pipelines
  steps      - list the steps available to pipelines`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationStandalone] == "true" {
				return nil
			}
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./easyfmt.toml or the user config dir)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, console, json, logfmt")
	flags.StringVarP(&a.inputFile, "input", "i", "", "read input lines from a file instead of standard input")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newRunCmd(a),
		newPipelinesCmd(a),
		newStepsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return runRoot(NewRootCmd())
}

// runRoot executes rootCmd and reports a failure once on its error output.
func runRoot(rootCmd *cobra.Command) error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the configuration and builds the run logger. Flags win over
// configuration, which wins over the defaults.
func (a *app) setup(logOutput io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
		})
	} else {
		a.cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	level, err := mdwlog.ParseLevel(stringx.FirstNonEmpty(a.logLevel, a.cfg.GetString("log.level"), "warn"))
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	format, err := mdwlog.ParseFormat(stringx.FirstNonEmpty(a.logFormat, a.cfg.GetString("log.format"), "text"))
	if err != nil {
		return fmt.Errorf("--log-format: %w", err)
	}

	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: logOutput,
		Name:   "easyfmt",
	}).WithCorrelationID(uuid.NewString())

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"config": stringx.FirstNonEmpty(a.cfg.FilePath(), "<none>"),
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}

// inputs returns args, or the lines of --input, or the lines of in.
func (a *app) inputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 || a.inputFile == "" {
		return stdinOrArgs(in, args)
	}
	text, err := filex.ReadString(a.inputFile)
	if err != nil {
		return nil, mdwerror.Wrap(err, "--input").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("path", a.inputFile)
	}
	return stdinOrArgs(strings.NewReader(text), nil)
}

// stdinOrArgs returns args, or the lines of in when no args are given.
func stdinOrArgs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	text := stringx.TrimEnd(string(data), stringx.AnyOf("\r\n"))
	if text == "" {
		return nil, nil
	}
	lines := stringx.SplitByte(text, '\n')
	for i, line := range lines {
		lines[i] = stringx.TrimEnd(line, stringx.Byte('\r'))
	}
	return lines, nil
}
