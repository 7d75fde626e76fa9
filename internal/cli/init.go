package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slope/internal/infra/fsworkspace"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter slope.yaml (and ignore .slope/ in git)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			written, err := fsworkspace.NewInitializer().Init(dir, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(written) == 0 {
				fmt.Fprintln(out, "slope.yaml already exists (use --force to overwrite)")
				return nil
			}
			for _, p := range written {
				fmt.Fprintf(out, "wrote %s\n", p)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite an existing slope.yaml")
	return c
}
