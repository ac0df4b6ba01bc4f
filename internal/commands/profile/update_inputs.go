package profile

import (
	"errors"
	"strings"

	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	fieldUsername    = "Username"
	fieldDisplayName = "Display name"
	fieldBio         = "Bio"

	maxBioLength = 160
)

var (
	errNoChanges  = errors.New("must specify at least one profile field to update")
	errBioTooLong = errors.New("bio must be at most 160 characters")
)

type updateInputs struct {
	cercle.ProfileUpdate
}

func (i *updateInputs) empty() bool {
	return i.Username == "" && i.DisplayName == "" && i.Bio == ""
}

func (i *updateInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.empty() {
		if err := i.ask(ui); err != nil {
			return err
		}
	}

	i.Username = strings.TrimSpace(i.Username)
	i.DisplayName = strings.TrimSpace(i.DisplayName)
	i.Bio = strings.TrimSpace(i.Bio)

	if i.empty() {
		return errNoChanges
	}
	if len([]rune(i.Bio)) > maxBioLength {
		return errBioTooLong
	}
	return nil
}

func (i *updateInputs) ask(ui terminal.UI) error {
	var fields []string
	if err := ui.AskOne(&fields, &survey.MultiSelect{
		Message: "Which profile fields would you like to update?",
		Options: []string{fieldUsername, fieldDisplayName, fieldBio},
	}); err != nil {
		return err
	}

	for _, field := range fields {
		var err error
		switch field {
		case fieldUsername:
			err = ui.AskOne(&i.Username, &survey.Input{Message: "New username"})
		case fieldDisplayName:
			err = ui.AskOne(&i.DisplayName, &survey.Input{Message: "New display name"})
		case fieldBio:
			err = ui.AskOne(&i.Bio, &survey.Input{Message: "New bio"})
		}
		if err != nil {
			return err
		}
	}
	return nil
}
