package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/fastclean/internal/browse"
)

func (a *app) newCacheBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore cache usage interactively",
		Long: `Interactive browser over the cache folders. Sizes load one folder at a
time; Backspace then Enter deletes the selected folder.

Prints a static table when the output is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := a.home()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return browse.Run(cmd.Context(), browse.Options{
				Probe:   a.deps.Probe,
				Remover: a.deps.Remover,
				Home:    home,
				Theme:   a.theme(out),
				In:      cmd.InOrStdin(),
				Out:     out,
			})
		},
	}

	return cmd
}
