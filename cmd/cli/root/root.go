package root

import (
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "twit",
	Short: "twitter-crud CLI",
	Long: `Command line interface for the twitter-crud API.
The API base URL is read from TWITTER_API_URL.`,
	SilenceUsage: true,
}

// GetRoot returns the RootCmd so subcommand packages can attach to it.
func GetRoot() *cobra.Command {
	return RootCmd
}
