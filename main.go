// Cercle is a tool for using the Cercle social network from the command line.
package main

import (
	"github.com/cercle-social/cercle-cli/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env file is not an error, the environment may be set directly
	_ = godotenv.Load()

	cmd.Run()
}
