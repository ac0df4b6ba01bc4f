package onboarding

import (
	"strings"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `onboarding` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.DisplayName, flagDisplayName, "", flagDisplayNameUsage)
	fs.StringVar(&cmd.inputs.Bio, flagBio, "", flagBioUsage)
	fs.StringSliceVar(&cmd.inputs.Interests, flagInterests, []string{}, flagInterestsUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if stored, ok := clients.Cercle.StoredUser(); ok && stored.OnboardingCompleted {
		proceed, err := ui.Confirm("Your account is already set up, would you like to run onboarding again?")
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	u, err := clients.Cercle.CompleteOnboarding(cercle.Onboarding{
		DisplayName: cmd.inputs.DisplayName,
		Bio:         cmd.inputs.Bio,
		Interests:   cmd.inputs.Interests,
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Welcome to Cercle, %s!", u.Name()))
	if len(cmd.inputs.Interests) > 0 {
		ui.Print(terminal.NewDebugLog("Your feed will favor posts about %s", strings.Join(cmd.inputs.Interests, ", ")))
	}
	ui.Print(terminal.NewFollowupLog("See what people are sharing", cli.CommandLine("feed")))
	return nil
}
