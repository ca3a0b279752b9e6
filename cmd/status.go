package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/session"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are signed in",
	Long: `Show the API the client talks to and whether a token is stored.

The token is not checked against the server; an expired token still shows
as logged in until a request is rejected.

Examples:
  mood status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

// showStatus displays the authentication state
func showStatus() {
	services := loadServices()
	if services == nil {
		return
	}

	status := services.Auth.Status()
	_, _ = fmt.Fprintf(deps.Stdout, "API:     %s\n", status.APIURL)

	if status.State != session.Authenticated {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:  not logged in")
		_, _ = fmt.Fprintln(deps.Stdout, "Sign in with: mood login")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Status:  logged in")
}
