package login

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email address of your Cercle account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password of your Cercle account"
)
