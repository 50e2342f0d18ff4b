package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/octofit/octofit/pkg/version"
)

// newVersionCmd prints build metadata.
func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "octofit %s\ncommit: %s\nbuilt: %s\ngo: %s %s/%s\n",
				ver, version.GetGitCommit(), version.GetBuildDate(),
				runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
