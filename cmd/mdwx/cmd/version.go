package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwx/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			st := newStyles(out)

			fmt.Fprintln(out, st.title.Render("meinDENKWERK Utilities v"+info.Version))
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		},
	}
}
