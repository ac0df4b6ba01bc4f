package flags

import (
	"fmt"
	"strings"
)

// Arg is a flag arg represented by its name and optional value
type Arg struct {
	Name  string
	Value interface{}
}

func (a Arg) String() string {
	s := " --" + a.Name

	if a.Value == nil {
		return s
	}

	if v, ok := a.Value.(string); ok && strings.ContainsAny(v, " \t\"") {
		return fmt.Sprintf("%s %q", s, v)
	}
	return fmt.Sprintf("%s %v", s, a.Value)
}

// Command returns the command line which invokes cmd with args
func Command(cmd string, args ...Arg) string {
	var sb strings.Builder
	sb.WriteString(cmd)
	for _, arg := range args {
		sb.WriteString(arg.String())
	}
	return sb.String()
}
