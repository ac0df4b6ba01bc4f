package login

import (
	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

type inputs struct {
	Email    string
	Password string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Email == "" {
		var defaultEmail string
		if u, ok := auth.StoredUser(profile); ok {
			defaultEmail = u.Email
		}
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email", Default: defaultEmail},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
