package profile

import (
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"
	"github.com/cercle-social/cercle-cli/internal/utils/test/mock"
)

func TestProfileAvatarHandler(t *testing.T) {
	t.Run("should upload the avatar file", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "cercle-avatar")
		assert.Nil(t, err)
		defer os.RemoveAll(dir)

		file := filepath.Join(dir, "ada.jpg")
		assert.Nil(t, ioutil.WriteFile(file, []byte("jpg-bytes"), 0600))

		var filename, data string

		client := mock.CercleClient{}
		client.UploadAvatarFn = func(name string, content io.Reader) (auth.User, error) {
			b, err := ioutil.ReadAll(content)
			if err != nil {
				return auth.User{}, err
			}
			filename, data = name, string(b)
			return auth.User{Username: "ada", AvatarURL: "https://cdn.cercle.social/ada.jpg"}, nil
		}

		out, ui := mock.NewUI()

		cmd := &CommandAvatar{avatarInputs{File: file}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Cercle: client}))
		assert.Equal(t, "ada.jpg", filename)
		assert.Equal(t, "jpg-bytes", data)
		assert.Equal(t, "01:23:45 UTC INFO  Successfully updated your avatar: https://cdn.cercle.social/ada.jpg\n", out.String())
	})

	t.Run("should report a missing avatar file", func(t *testing.T) {
		_, ui := mock.NewUI()

		file := filepath.Join(os.TempDir(), "cercle-missing.png")

		cmd := &CommandAvatar{avatarInputs{File: file}}
		assert.Equal(t, errors.New("avatar image not found: "+file), cmd.Handler(nil, ui, cli.Clients{}))
	})
}

func TestProfileAvatarInputs(t *testing.T) {
	t.Run("should accept a supported image", func(t *testing.T) {
		i := avatarInputs{File: "photos/Ada.JPEG"}
		assert.Nil(t, i.Resolve(nil, nil))
	})

	t.Run("should reject an unsupported file", func(t *testing.T) {
		i := avatarInputs{File: "docs/resume.pdf"}
		assert.Equal(t, errors.New("unsupported avatar image: resume.pdf"), i.Resolve(nil, nil))
	})
}
