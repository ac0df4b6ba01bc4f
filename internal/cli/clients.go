package cli

import (
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
)

// Clients are the CLI clients
type Clients struct {
	Cercle cercle.Client
}
