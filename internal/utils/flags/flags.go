package flags

import (
	"fmt"

	"github.com/spf13/pflag"
)

// MarkHidden hides the named flag from the command usage output
// It panics if the flag has not been registered
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(fmt.Sprintf("failed to hide flag: %s", err))
	}
}
