package commands

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/commands/comment"
	"github.com/cercle-social/cercle-cli/internal/commands/feed"
	"github.com/cercle-social/cercle-cli/internal/commands/login"
	"github.com/cercle-social/cercle-cli/internal/commands/logout"
	"github.com/cercle-social/cercle-cli/internal/commands/onboarding"
	"github.com/cercle-social/cercle-cli/internal/commands/post"
	"github.com/cercle-social/cercle-cli/internal/commands/profile"
	"github.com/cercle-social/cercle-cli/internal/commands/register"
	"github.com/cercle-social/cercle-cli/internal/commands/whoami"
)

// set of commands
var (
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Aliases:     []string{"signup"},
		Description: "Create a new Cercle account and log in to it",
		Help: `Create a new Cercle account and log in to it

	Prompts for any account details not provided as flags. If a different user
	is already logged in, you are asked to confirm before their session is
	replaced.`,
	}
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in to Cercle with your email and password",
		Help: `Log in to Cercle with your email and password

	The session is kept in the current profile, or in Redis when the profile's
	store is set to "redis". Access tokens are refreshed automatically while
	the refresh token remains valid.`,
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
		Help:        "Terminate the current user's session and forget the cached user",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help:        "Display the current user's details, use --refresh to fetch them from Cercle",
	}

	Feed = cli.CommandDefinition{
		Command:     &feed.Command{},
		Use:         "feed",
		Description: "Show the latest posts",
		Help:        "Show a page of the latest posts, or of a single user's posts with --user",
	}

	Post = cli.CommandDefinition{
		Use:         "post",
		Aliases:     []string{"posts"},
		Description: "Publish and manage posts",
		Help:        "Publish, delete, like and unlike posts",
		SubCommands: []cli.CommandDefinition{
			cli.CommandDefinition{
				Use:         "create",
				Aliases:     []string{"new"},
				Display:     "post create",
				Description: "Publish a new post",
				Help:        "Publish a new post with text content and an optional image",
				Command:     &post.CommandCreate{},
			},
			cli.CommandDefinition{
				Use:         "delete",
				Aliases:     []string{"rm"},
				Display:     "post delete",
				Description: "Delete one of your posts",
				Command:     &post.CommandDelete{},
			},
			cli.CommandDefinition{
				Use:         "like",
				Display:     "post like",
				Description: "Like a post",
				Command:     &post.CommandLike{},
			},
			cli.CommandDefinition{
				Use:         "unlike",
				Display:     "post unlike",
				Description: "Remove your like from a post",
				Command:     &post.CommandUnlike{},
			},
		},
	}

	Comment = cli.CommandDefinition{
		Use:         "comment",
		Aliases:     []string{"comments"},
		Description: "Read and write comments on posts",
		SubCommands: []cli.CommandDefinition{
			cli.CommandDefinition{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "comment list",
				Description: "List the comments on a post",
				Command:     comment.NewCommandList(),
			},
			cli.CommandDefinition{
				Use:         "add",
				Display:     "comment add",
				Description: "Comment on a post",
				Command:     comment.NewCommandAdd(),
			},
			cli.CommandDefinition{
				Use:         "replies",
				Display:     "comment replies",
				Description: "List the replies to a comment",
				Command:     comment.NewCommandReplies(),
			},
			cli.CommandDefinition{
				Use:         "reply",
				Display:     "comment reply",
				Description: "Reply to a comment",
				Command:     comment.NewCommandReply(),
			},
		},
	}

	Profile = cli.CommandDefinition{
		Use:         "profile",
		Description: "View and edit Cercle profiles",
		SubCommands: []cli.CommandDefinition{
			cli.CommandDefinition{
				Use:         "show",
				Display:     "profile show",
				Description: "Show your profile or another user's",
				Command:     &profile.CommandShow{},
			},
			cli.CommandDefinition{
				Use:         "update",
				Display:     "profile update",
				Description: "Update your username, display name or bio",
				Command:     &profile.CommandUpdate{},
			},
			cli.CommandDefinition{
				Use:         "avatar",
				Display:     "profile avatar",
				Description: "Upload a new avatar image",
				Command:     &profile.CommandAvatar{},
			},
		},
	}

	Onboarding = cli.CommandDefinition{
		Command:     &onboarding.Command{},
		Use:         "onboarding",
		Description: "Finish setting up your account",
		Help:        "Set your display name, bio and interests to finish setting up your account",
	}
)

// All is the list of top level commands in the order they are shown in help output
var All = []cli.CommandDefinition{
	Register,
	Login,
	Logout,
	Whoami,
	Feed,
	Post,
	Comment,
	Profile,
	Onboarding,
}
