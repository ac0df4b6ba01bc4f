package comment

const (
	flagPost      = "post"
	flagPostShort = "p"
	flagPostUsage = "Specify the id of the post"

	flagComment      = "comment"
	flagCommentShort = "c"
	flagCommentUsage = "Specify the id of the comment"

	flagContent      = "content"
	flagContentUsage = "Specify the text of the comment"
)
