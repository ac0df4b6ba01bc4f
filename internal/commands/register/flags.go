package register

const (
	flagUsername      = "username"
	flagUsernameShort = "u"
	flagUsernameUsage = "Specify the username of your new Cercle account"

	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email address of your new Cercle account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password of your new Cercle account"

	flagDisplayName      = "display-name"
	flagDisplayNameUsage = "Specify the name shown to other Cercle users"
)
