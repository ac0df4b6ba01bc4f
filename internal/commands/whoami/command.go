package whoami

import (
	"time"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagRefresh      = "refresh"
	flagRefreshUsage = "Fetch the logged in user from Cercle instead of the cached copy"
)

// Command is the `whoami` command
type Command struct {
	refresh bool
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolVar(&cmd.refresh, flagRefresh, false, flagRefreshUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if !clients.Cercle.IsAuthenticated() {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	var u auth.User
	if cmd.refresh {
		current, err := clients.Cercle.CurrentUser()
		if err != nil {
			return err
		}
		u = current
	} else {
		stored, ok := clients.Cercle.StoredUser()
		if !ok {
			ui.Print(terminal.NewTextLog("The logged in user is unknown"))
			ui.Print(terminal.NewFollowupLog(terminal.MsgSuggestedCommands, cli.CommandLine("whoami --refresh")))
			return nil
		}
		u = stored
	}

	session := clients.Cercle.Session()

	ui.Print(terminal.NewTextLog("Currently logged in user: %s (%s)", u.Name(), u.RedactedEmail()))
	if expiry, err := session.AccessTokenExpiry(); err == nil {
		ui.Print(terminal.NewDebugLog("Access token %s expires at %s", session.RedactedAccessToken(), expiry.UTC().Format(time.RFC3339)))
	}
	return nil
}
