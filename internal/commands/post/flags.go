package post

const (
	flagID      = "id"
	flagIDShort = "i"
	flagIDUsage = "Specify the id of the post"

	flagContent      = "content"
	flagContentShort = "c"
	flagContentUsage = "Specify the text of the post"

	flagImage      = "image"
	flagImageUsage = "Specify the path to an image to attach to the post"
)
