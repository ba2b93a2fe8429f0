package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/easyfmt/foundation/core/log"
	"github.com/msto63/easyfmt/foundation/utils/stringx"
	"github.com/msto63/easyfmt/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var spec string

	renderCmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Post-process rendered values with a format spec",
		Long: `Applies namespace shortening and case folding to each argument, or to
each line of standard input (or of the --input file) when no arguments are
given.

The spec is an optional namespace marker (s = short, f = full) followed by
an optional case marker (L = lower, U = upper). Without --spec the value of
render.spec from the configuration is used.`,
		Example: `  easyfmt render --spec s 'my::ns::Widget(42)'    # Widget(42)
  easyfmt render --spec sU 'my::ns::Widget(42)'   # WIDGET(42)
  nm -C app | easyfmt render --spec fL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec = stringx.FirstNonEmpty(spec, a.cfg.GetString("render.spec"))

			lines, err := a.inputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			a.logger.Debug("rendering", mdwlog.Fields{"spec": spec, "values": len(lines)})

			out := cmd.OutOrStdout()
			for _, line := range lines {
				text, err := render.Format(render.Text(line), spec)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
			}
			return nil
		},
	}

	renderCmd.Flags().StringVarP(&spec, "spec", "s", "", "format spec, e.g. s, U, sL")
	return renderCmd
}
