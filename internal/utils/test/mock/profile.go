package mock

import (
	"testing"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	u "github.com/cercle-social/cercle-cli/internal/utils/test"
	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
// saved under a temporary home directory
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	u.NewTempHomeDir(t)

	profile, err := user.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	assert.Nil(t, profile.Load())
	return profile
}

// NewProfileWithSession returns a new CLI profile holding the session and user
func NewProfileWithSession(t *testing.T, session auth.Session, usr auth.User) *user.Profile {
	t.Helper()
	profile := NewProfile(t)
	assert.Nil(t, auth.Persist(profile, session, usr))
	return profile
}
