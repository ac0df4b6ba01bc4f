package comment

import (
	"fmt"

	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
)

// set of comment table headers
const (
	headerID      = "ID"
	headerAuthor  = "Author"
	headerComment = "Comment"
	headerReplies = "Replies"
	headerCreated = "Created"
)

var commentHeaders = []string{headerID, headerAuthor, headerComment, headerReplies, headerCreated}

func commentRows(comments []cercle.Comment) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(comments))
	for _, comment := range comments {
		var created string
		if !comment.CreatedAt.IsZero() {
			created = comment.CreatedAt.UTC().Format("2006-01-02 15:04")
		}
		rows = append(rows, map[string]interface{}{
			headerID:      comment.ID,
			headerAuthor:  comment.Author.Name(),
			headerComment: comment.Content,
			headerReplies: comment.RepliesCount,
			headerCreated: created,
		})
	}
	return rows
}

func countMessage(n int, singular, plural string) string {
	if n == 1 {
		return "Found 1 " + singular
	}
	return fmt.Sprintf("Found %d %s", n, plural)
}

