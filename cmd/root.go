package cmd

import (
	"fmt"
	"os"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to use the Cercle social network",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory := cli.NewCommandFactory()

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	for _, command := range commands.All {
		cmd.AddCommand(factory.Build(command))
	}

	code := factory.Run(cmd)
	factory.Close()
	os.Exit(code)
}
