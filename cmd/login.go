package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/service"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the journal API",
	Long: `Sign in with your email and password. The token returned by the API is
stored next to the config file and used by every other command.

Missing credentials are read from stdin.

Examples:
  mood login --email you@example.com --password secret
  mood login                                   Prompt for both`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		authenticate(commandContext(cmd), false, email, password)
	},
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Long: `Create an account with your email and password and sign in with it.

Examples:
  mood register --email you@example.com --password secret`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		authenticate(commandContext(cmd), true, email, password)
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logout()
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringP("email", "e", "", "Account email")
		c.Flags().StringP("password", "p", "", "Account password")
	}
}

// authenticate signs in or registers, prompting for missing credentials.
func authenticate(ctx context.Context, register bool, email, password string) {
	services := loadServices()
	if services == nil {
		return
	}

	in := bufio.NewReader(deps.Stdin)
	if email == "" {
		email = prompt(in, "Email: ")
	}
	if password == "" {
		password = prompt(in, "Password: ")
	}

	var err error
	if register {
		err = services.Auth.Register(ctx, email, password)
	} else {
		err = services.Auth.Login(ctx, email, password)
	}
	if err != nil {
		failAuth(err, services.Auth.Status().APIURL)
		return
	}

	if register {
		_, _ = fmt.Fprintf(deps.Stdout, "Account created. Logged in as %s\n", strings.TrimSpace(email))
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Logged in as %s\n", strings.TrimSpace(email))
}

func failAuth(err error, apiURL string) {
	var authErr *service.AuthError
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, service.ErrMissingEmail),
		errors.Is(err, service.ErrMissingPassword),
		errors.Is(err, service.ErrInvalidEmail):
		fail(capitalize(err.Error()), nil, "Pass --email and --password, or enter them when prompted")
	case errors.As(err, &authErr) && errors.As(err, &reqErr) && reqErr.Status == 0:
		fail(authErr.Message, reqErr, fmt.Sprintf("Check that the API is reachable at %s", apiURL))
	case errors.As(err, &authErr):
		fail(authErr.Message, nil, "")
	default:
		fail("Failed to store the token", err, "Check that your config directory is writable")
	}
}

// prompt writes label and reads one line from in. EOF yields what was read.
func prompt(in *bufio.Reader, label string) string {
	_, _ = fmt.Fprint(deps.Stdout, label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// logout discards the stored token. Logging out twice is not an error.
func logout() {
	services := loadServices()
	if services == nil {
		return
	}

	wasLoggedIn := services.Session.Authorized()
	if err := services.Auth.Logout(); err != nil {
		fail("Failed to remove the stored token", err, "Check that your config directory is writable")
		return
	}

	if wasLoggedIn {
		_, _ = fmt.Fprintln(deps.Stdout, "Logged out")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Not logged in")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
