package feed

import (
	"fmt"
	"time"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/terminal"
	"github.com/cercle-social/cercle-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagUser      = "user"
	flagUserShort = "u"
	flagUserUsage = "Show the posts of the user with this id instead of your feed"

	flagPage      = "page"
	flagPageUsage = "Specify the page of posts to show"

	flagLimit      = "limit"
	flagLimitUsage = "Specify the number of posts per page"

	defaultPage  = 1
	defaultLimit = 20
)

// set of post table headers
const (
	HeaderID       = "ID"
	HeaderAuthor   = "Author"
	HeaderContent  = "Content"
	HeaderLikes    = "Likes"
	HeaderComments = "Comments"
	HeaderCreated  = "Created"
)

var postHeaders = []string{HeaderID, HeaderAuthor, HeaderContent, HeaderLikes, HeaderComments, HeaderCreated}

// Command is the `feed` command
type Command struct {
	userID string
	page   int
	limit  int
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.userID, flagUser, flagUserShort, "", flagUserUsage)
	fs.IntVar(&cmd.page, flagPage, defaultPage, flagPageUsage)
	fs.IntVar(&cmd.limit, flagLimit, defaultLimit, flagLimitUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	opts := cercle.FeedOptions{Page: cmd.page, Limit: cmd.limit}

	var feed cercle.Feed
	var err error
	if cmd.userID == "" {
		feed, err = clients.Cercle.Feed(opts)
	} else {
		feed, err = clients.Cercle.UserPosts(cmd.userID, opts)
	}
	if err != nil {
		return err
	}

	if len(feed.Posts) == 0 {
		ui.Print(terminal.NewTextLog("No posts to show"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Page %d of posts", feed.Page),
		postHeaders,
		PostRows(feed.Posts)...,
	))

	if feed.HasMore {
		args := []flags.Arg{{Name: flagPage, Value: feed.Page + 1}}
		if cmd.userID != "" {
			args = append(args, flags.Arg{Name: flagUser, Value: cmd.userID})
		}
		if cmd.limit != defaultLimit {
			args = append(args, flags.Arg{Name: flagLimit, Value: cmd.limit})
		}
		ui.Print(terminal.NewFollowupLog("To see more posts run", flags.Command(cli.CommandLine("feed"), args...)))
	}
	return nil
}

// PostRows converts posts into table rows
func PostRows(posts []cercle.Post) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, PostRow(post))
	}
	return rows
}

// PostRow converts a post into a table row
func PostRow(post cercle.Post) map[string]interface{} {
	likes := interface{}(post.LikesCount)
	if post.LikedByMe {
		likes = fmt.Sprintf("%d ♥", post.LikesCount)
	}
	return map[string]interface{}{
		HeaderID:       post.ID,
		HeaderAuthor:   post.Author.Name(),
		HeaderContent:  post.Content,
		HeaderLikes:    likes,
		HeaderComments: post.CommentsCount,
		HeaderCreated:  formatTime(post.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
