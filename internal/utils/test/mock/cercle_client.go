package mock

import (
	"io"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
)

// CercleClient is a mocked Cercle client
type CercleClient struct {
	cercle.Client
	RegisterFn           func(registration cercle.Registration) (auth.User, error)
	LoginFn              func(creds cercle.Credentials) (auth.User, error)
	LogoutFn             func() error
	CurrentUserFn        func() (auth.User, error)
	IsAuthenticatedFn    func() bool
	SessionFn            func() auth.Session
	StoredUserFn         func() (auth.User, bool)
	FeedFn               func(opts cercle.FeedOptions) (cercle.Feed, error)
	UserPostsFn          func(userID string, opts cercle.FeedOptions) (cercle.Feed, error)
	CreatePostFn         func(post cercle.NewPost) (cercle.Post, error)
	DeletePostFn         func(postID string) error
	LikePostFn           func(postID string) (cercle.Post, error)
	UnlikePostFn         func(postID string) (cercle.Post, error)
	CommentsFn           func(postID string) ([]cercle.Comment, error)
	CreateCommentFn      func(postID, content string) (cercle.Comment, error)
	RepliesFn            func(commentID string) ([]cercle.Comment, error)
	CreateReplyFn        func(commentID, content string) (cercle.Comment, error)
	UserProfileFn        func(userID string) (auth.User, error)
	UpdateProfileFn      func(update cercle.ProfileUpdate) (auth.User, error)
	UploadAvatarFn       func(filename string, content io.Reader) (auth.User, error)
	CompleteOnboardingFn func(onboarding cercle.Onboarding) (auth.User, error)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Register(registration cercle.Registration) (auth.User, error) {
	if c.RegisterFn != nil {
		return c.RegisterFn(registration)
	}
	return c.Client.Register(registration)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Login(creds cercle.Credentials) (auth.User, error) {
	if c.LoginFn != nil {
		return c.LoginFn(creds)
	}
	return c.Client.Login(creds)
}

// Logout calls the mocked Logout implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Logout() error {
	if c.LogoutFn != nil {
		return c.LogoutFn()
	}
	return c.Client.Logout()
}

// CurrentUser calls the mocked CurrentUser implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) CurrentUser() (auth.User, error) {
	if c.CurrentUserFn != nil {
		return c.CurrentUserFn()
	}
	return c.Client.CurrentUser()
}

// IsAuthenticated calls the mocked IsAuthenticated implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) IsAuthenticated() bool {
	if c.IsAuthenticatedFn != nil {
		return c.IsAuthenticatedFn()
	}
	return c.Client.IsAuthenticated()
}

// Session calls the mocked Session implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Session() auth.Session {
	if c.SessionFn != nil {
		return c.SessionFn()
	}
	return c.Client.Session()
}

// StoredUser calls the mocked StoredUser implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) StoredUser() (auth.User, bool) {
	if c.StoredUserFn != nil {
		return c.StoredUserFn()
	}
	return c.Client.StoredUser()
}

// Feed calls the mocked Feed implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Feed(opts cercle.FeedOptions) (cercle.Feed, error) {
	if c.FeedFn != nil {
		return c.FeedFn(opts)
	}
	return c.Client.Feed(opts)
}

// UserPosts calls the mocked UserPosts implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) UserPosts(userID string, opts cercle.FeedOptions) (cercle.Feed, error) {
	if c.UserPostsFn != nil {
		return c.UserPostsFn(userID, opts)
	}
	return c.Client.UserPosts(userID, opts)
}

// CreatePost calls the mocked CreatePost implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) CreatePost(post cercle.NewPost) (cercle.Post, error) {
	if c.CreatePostFn != nil {
		return c.CreatePostFn(post)
	}
	return c.Client.CreatePost(post)
}

// DeletePost calls the mocked DeletePost implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) DeletePost(postID string) error {
	if c.DeletePostFn != nil {
		return c.DeletePostFn(postID)
	}
	return c.Client.DeletePost(postID)
}

// LikePost calls the mocked LikePost implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) LikePost(postID string) (cercle.Post, error) {
	if c.LikePostFn != nil {
		return c.LikePostFn(postID)
	}
	return c.Client.LikePost(postID)
}

// UnlikePost calls the mocked UnlikePost implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) UnlikePost(postID string) (cercle.Post, error) {
	if c.UnlikePostFn != nil {
		return c.UnlikePostFn(postID)
	}
	return c.Client.UnlikePost(postID)
}

// Comments calls the mocked Comments implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Comments(postID string) ([]cercle.Comment, error) {
	if c.CommentsFn != nil {
		return c.CommentsFn(postID)
	}
	return c.Client.Comments(postID)
}

// CreateComment calls the mocked CreateComment implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) CreateComment(postID, content string) (cercle.Comment, error) {
	if c.CreateCommentFn != nil {
		return c.CreateCommentFn(postID, content)
	}
	return c.Client.CreateComment(postID, content)
}

// Replies calls the mocked Replies implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) Replies(commentID string) ([]cercle.Comment, error) {
	if c.RepliesFn != nil {
		return c.RepliesFn(commentID)
	}
	return c.Client.Replies(commentID)
}

// CreateReply calls the mocked CreateReply implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) CreateReply(commentID, content string) (cercle.Comment, error) {
	if c.CreateReplyFn != nil {
		return c.CreateReplyFn(commentID, content)
	}
	return c.Client.CreateReply(commentID, content)
}

// UserProfile calls the mocked UserProfile implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) UserProfile(userID string) (auth.User, error) {
	if c.UserProfileFn != nil {
		return c.UserProfileFn(userID)
	}
	return c.Client.UserProfile(userID)
}

// UpdateProfile calls the mocked UpdateProfile implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) UpdateProfile(update cercle.ProfileUpdate) (auth.User, error) {
	if c.UpdateProfileFn != nil {
		return c.UpdateProfileFn(update)
	}
	return c.Client.UpdateProfile(update)
}

// UploadAvatar calls the mocked UploadAvatar implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) UploadAvatar(filename string, content io.Reader) (auth.User, error) {
	if c.UploadAvatarFn != nil {
		return c.UploadAvatarFn(filename, content)
	}
	return c.Client.UploadAvatar(filename, content)
}

// CompleteOnboarding calls the mocked CompleteOnboarding implementation if provided,
// otherwise the call falls back to the underlying cercle.Client implementation.
// NOTE: this may panic if the underlying cercle.Client is left undefined
func (c CercleClient) CompleteOnboarding(onboarding cercle.Onboarding) (auth.User, error) {
	if c.CompleteOnboardingFn != nil {
		return c.CompleteOnboardingFn(onboarding)
	}
	return c.Client.CompleteOnboarding(onboarding)
}
