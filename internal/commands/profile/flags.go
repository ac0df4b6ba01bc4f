package profile

const (
	flagUser      = "user"
	flagUserShort = "u"
	flagUserUsage = "Specify the id of the user to show, defaults to you"

	flagUsername      = "username"
	flagUsernameUsage = "Set a new username"

	flagDisplayName      = "display-name"
	flagDisplayNameUsage = "Set a new display name"

	flagBio      = "bio"
	flagBioUsage = "Set a new bio"

	flagFile      = "file"
	flagFileShort = "f"
	flagFileUsage = "Specify the path to the image to use as your avatar"
)
