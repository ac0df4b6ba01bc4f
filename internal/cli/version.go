package cli

import (
	"fmt"
	"runtime"
)

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "cercle"

	// Version represents the CLI version
	Version = "0.0.0" // value will be injected at build-time
)

// UserAgent returns the User-Agent header sent with every Cercle request
func UserAgent() string {
	return fmt.Sprintf("%s-cli/%s (%s; %s)", Name, Version, runtime.GOOS, runtime.GOARCH)
}

// CommandLine returns the command line which invokes the named CLI command
func CommandLine(command string) string {
	return Name + " " + command
}
