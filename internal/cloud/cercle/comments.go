package cercle

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cercle-social/cercle-cli/internal/utils/api"
)

const (
	postCommentsPattern   = postPathPattern + "/comments"
	commentRepliesPattern = apiV1 + "/comments/%s/replies"
)

// Comment is a comment on a post, or a reply to another comment
type Comment struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	ParentID     string    `json:"parentId,omitempty"`
	Author       Author    `json:"author"`
	Content      string    `json:"content"`
	RepliesCount int       `json:"repliesCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type commentPayload struct {
	Content string `json:"content"`
}

type commentsResponse struct {
	Comments []Comment `json:"comments"`
}

func (c *client) Comments(postID string) ([]Comment, error) {
	return c.listComments(fmt.Sprintf(postCommentsPattern, url.PathEscape(postID)))
}

func (c *client) CreateComment(postID, content string) (Comment, error) {
	return c.createComment(fmt.Sprintf(postCommentsPattern, url.PathEscape(postID)), content)
}

func (c *client) Replies(commentID string) ([]Comment, error) {
	return c.listComments(fmt.Sprintf(commentRepliesPattern, url.PathEscape(commentID)))
}

func (c *client) CreateReply(commentID, content string) (Comment, error) {
	return c.createComment(fmt.Sprintf(commentRepliesPattern, url.PathEscape(commentID)), content)
}

func (c *client) listComments(path string) ([]Comment, error) {
	var out commentsResponse
	if err := c.Request(http.MethodGet, path, api.RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

func (c *client) createComment(path, content string) (Comment, error) {
	res, err := c.doJSON(http.MethodPost, path, commentPayload{content}, api.RequestOptions{})
	if err != nil {
		return Comment{}, err
	}

	var comment Comment
	err = decodeJSON(res, &comment)
	return comment, err
}
