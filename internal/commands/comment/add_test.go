package comment

import (
	"testing"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"
	"github.com/cercle-social/cercle-cli/internal/utils/test/mock"
)

func TestCommentAddHandler(t *testing.T) {
	var postID, content string

	client := mock.CercleClient{}
	client.CreateCommentFn = func(id, c string) (cercle.Comment, error) {
		postID, content = id, c
		return cercle.Comment{ID: "comment-2", PostID: id, Content: c}, nil
	}

	out, ui := mock.NewUI()

	cmd := NewCommandAdd()
	cmd.inputs.ParentID = "post-1"
	cmd.inputs.Content = "nice post"

	assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Cercle: client}))
	assert.Equal(t, "post-1", postID)
	assert.Equal(t, "nice post", content)
	assert.Equal(t, "01:23:45 UTC INFO  Successfully commented on post post-1: comment-2\n", out.String())
}

func TestCommentReplyHandler(t *testing.T) {
	var commentID, content string

	client := mock.CercleClient{}
	client.CreateReplyFn = func(id, c string) (cercle.Comment, error) {
		commentID, content = id, c
		return cercle.Comment{ID: "comment-3", ParentID: id, Content: c}, nil
	}

	out, ui := mock.NewUI()

	cmd := NewCommandReply()
	cmd.inputs.ParentID = "comment-1"
	cmd.inputs.Content = "agreed"

	assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Cercle: client}))
	assert.Equal(t, "comment-1", commentID)
	assert.Equal(t, "agreed", content)
	assert.Equal(t, "01:23:45 UTC INFO  Successfully replied to comment comment-1: comment-3\n", out.String())
}
