package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/easyfmt/foundation/utils/stringx"
	"github.com/msto63/easyfmt/pkg/pipeline"
)

func newRunCmd(a *app) *cobra.Command {
	var whole bool

	runCmd := &cobra.Command{
		Use:   "run <pipeline> [text...]",
		Short: "Run a configured pipeline",
		Long: `Runs the named pipeline from the [pipelines] table of the configuration
file on each argument, or on each line of standard input (or of the --input
file) when no arguments are given. With --whole, the input is passed as a
single value.`,
		Example: `  easyfmt run const_names --config easyfmt.toml 'maxValue, httpPort'
  cat names.txt | easyfmt run slug`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.pipelines()
			if err != nil {
				return err
			}

			name, inputs := args[0], args[1:]
			if whole && len(inputs) == 0 {
				lines, err := a.inputs(cmd.InOrStdin(), nil)
				if err != nil {
					return err
				}
				inputs = []string{stringx.Join(lines, "\n")}
			} else if inputs, err = a.inputs(cmd.InOrStdin(), inputs); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, input := range inputs {
				result, err := set.Run(name, input)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, result)
			}
			return nil
		},
	}

	runCmd.Flags().BoolVarP(&whole, "whole", "w", false, "treat standard input as one value")
	return runCmd
}

func newPipelinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pipelines",
		Short: "List the pipelines defined in the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.pipelines()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if set.Len() == 0 {
				fmt.Fprintln(out, mutedStyle.Render("no pipelines configured"))
				return nil
			}

			fmt.Fprintln(out, titleStyle.Render("Pipelines"))
			for _, name := range set.Names() {
				p, _ := set.Get(name)
				specs := p.Steps()
				chain := make([]string, len(specs))
				for i, s := range specs {
					chain[i] = s.String()
				}
				fmt.Fprintf(out, "%s %s\n", nameStyle.Render(name), mutedStyle.Render(p.Description()))
				fmt.Fprintf(out, "%s\n", chainStyle.Render(stringx.Join(chain, " | ")))
			}
			return nil
		},
	}
}

// pipelines compiles the pipelines of the loaded configuration. Errors are
// reported by the caller.
func (a *app) pipelines() (*pipeline.Set, error) {
	return pipeline.LoadSet(a.cfg, pipeline.WithLogger(a.logger))
}
