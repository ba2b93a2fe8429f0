package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/easyfmt/pkg/pipeline"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "steps",
		Short:       "List the steps available to pipelines",
		Annotations: map[string]string{annotationStandalone: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Steps"))
			for _, s := range pipeline.DefaultRegistry().Steps() {
				fmt.Fprintf(out, "%s %s\n", usageStyle.Render(s.Usage), mutedStyle.Render(s.Description))
			}
		},
	}
}
