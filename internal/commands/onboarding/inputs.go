package onboarding

import (
	"strings"

	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	flagDisplayName      = "display-name"
	flagDisplayNameUsage = "Specify the name shown to other Cercle users"

	flagBio      = "bio"
	flagBioUsage = "Specify a short bio"

	flagInterests      = "interests"
	flagInterestsUsage = "Specify your interests as a comma separated list"
)

type inputs struct {
	DisplayName string
	Bio         string
	Interests   []string
}

type answers struct {
	DisplayName string
	Bio         string
	Interests   string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.DisplayName == "" {
		questions = append(questions, &survey.Question{
			Name:     "displayname",
			Prompt:   &survey.Input{Message: "Display name"},
			Validate: survey.Required,
		})
	}

	if i.Bio == "" {
		questions = append(questions, &survey.Question{
			Name:   "bio",
			Prompt: &survey.Input{Message: "Bio (optional)"},
		})
	}

	if len(i.Interests) == 0 {
		questions = append(questions, &survey.Question{
			Name:   "interests",
			Prompt: &survey.Input{Message: "Interests, separated by commas (optional)"},
		})
	}

	if len(questions) > 0 {
		a := answers{DisplayName: i.DisplayName, Bio: i.Bio}
		if err := ui.Ask(&a, questions...); err != nil {
			return err
		}
		i.DisplayName, i.Bio = a.DisplayName, a.Bio
		if len(i.Interests) == 0 {
			i.Interests = splitInterests(a.Interests)
		}
	}

	i.DisplayName = strings.TrimSpace(i.DisplayName)
	i.Bio = strings.TrimSpace(i.Bio)
	i.Interests = normalizeInterests(i.Interests)
	return nil
}

func splitInterests(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// normalizeInterests trims and dedupes interests, case-insensitively, keeping their order
func normalizeInterests(interests []string) []string {
	seen := make(map[string]bool, len(interests))
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		key := strings.ToLower(interest)
		if interest == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, interest)
	}
	return out
}
