package register

import (
	"errors"

	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldUsername = "username"
	inputFieldEmail    = "email"
	inputFieldPassword = "password"

	minPasswordLength = 8
)

var errPasswordTooShort = errors.New("password must be at least 8 characters")

type inputs struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Username == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldUsername,
			Prompt:   &survey.Input{Message: "Username"},
			Validate: survey.Required,
		})
	}

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email"},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.ComposeValidators(survey.Required, survey.MinLength(minPasswordLength)),
		})
	} else if len(i.Password) < minPasswordLength {
		return errPasswordTooShort
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
