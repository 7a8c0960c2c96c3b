package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd - story-album 진입점
var rootCmd = &cobra.Command{
	Use:     "story-album",
	Version: "dev",
	Short:   "Story album layout planner and API server",
	Long: `story-album turns a handful of trip photos into an ordered album layout.

Run "serve" for the HTTP/WebSocket API, or "plan" to print a layout for a given
image count, trip type and moods.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	return rootCmd.Execute()
}
