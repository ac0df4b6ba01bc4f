package cli

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

// CommandSuggester handles any suggestions to run if the current command isn't working
type CommandSuggester interface {
	SuggestedCommands() []string
}

// LinkReferrer gives a list of links that relate to this command to give the user more context
type LinkReferrer interface {
	ReferenceLinks() []string
}

// ErrNotLoggedIn is returned by commands which require a session when none is stored
var ErrNotLoggedIn error = errNotLoggedIn{}

type errNotLoggedIn struct{}

func (err errNotLoggedIn) Error() string { return "you are not logged in" }

func (err errNotLoggedIn) SuggestedCommands() []string {
	return []string{CommandLine("login"), CommandLine("register")}
}

type errSessionExpired struct {
	error
}

func (err errSessionExpired) Unwrap() error { return err.error }

func (err errSessionExpired) SuggestedCommands() []string {
	return []string{CommandLine("login")}
}
