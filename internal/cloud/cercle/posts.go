package cercle

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cercle-social/cercle-cli/internal/utils/api"
)

const (
	postsPath        = apiV1 + "/posts"
	postPathPattern  = postsPath + "/%s"
	postLikePattern  = postPathPattern + "/like"
	userPostsPattern = usersPath + "/%s/posts"

	formFieldContent = "content"
	formFieldImage   = "image"
)

// Author is the author of a post or comment
type Author struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// Name returns the author's display name, falling back to the username
func (a Author) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

// Post is a Cercle post
type Post struct {
	ID            string    `json:"id"`
	Author        Author    `json:"author"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	LikedByMe     bool      `json:"likedByMe"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Feed is a page of posts
type Feed struct {
	Posts   []Post `json:"posts"`
	Page    int    `json:"page"`
	HasMore bool   `json:"hasMore"`
}

// FeedOptions are options to page through a feed
type FeedOptions struct {
	Page  int
	Limit int
}

func (opts FeedOptions) query() url.Values {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	return query
}

// NewPost is a post to create
// When Image is set the post is sent as a multipart form
type NewPost struct {
	Content   string
	ImageName string
	Image     io.Reader
}

type postPayload struct {
	Content string `json:"content"`
}

func (c *client) Feed(opts FeedOptions) (Feed, error) {
	var feed Feed
	err := c.Request(http.MethodGet, postsPath, api.RequestOptions{Query: opts.query()}, &feed)
	return feed, err
}

func (c *client) UserPosts(userID string, opts FeedOptions) (Feed, error) {
	var feed Feed
	err := c.Request(
		http.MethodGet,
		fmt.Sprintf(userPostsPattern, url.PathEscape(userID)),
		api.RequestOptions{Query: opts.query()},
		&feed,
	)
	return feed, err
}

func (c *client) CreatePost(post NewPost) (Post, error) {
	var res *http.Response
	var err error
	if post.Image != nil {
		res, err = c.doMultipart(
			http.MethodPost,
			postsPath,
			map[string]string{formFieldContent: post.Content},
			[]api.FormFile{{Field: formFieldImage, Filename: post.ImageName, Content: post.Image}},
			api.RequestOptions{},
		)
	} else {
		res, err = c.doJSON(http.MethodPost, postsPath, postPayload{post.Content}, api.RequestOptions{})
	}
	if err != nil {
		return Post{}, err
	}

	var created Post
	err = decodeJSON(res, &created)
	return created, err
}

func (c *client) DeletePost(postID string) error {
	return c.Request(http.MethodDelete, fmt.Sprintf(postPathPattern, url.PathEscape(postID)), api.RequestOptions{}, nil)
}

func (c *client) LikePost(postID string) (Post, error) {
	var post Post
	err := c.Request(http.MethodPost, fmt.Sprintf(postLikePattern, url.PathEscape(postID)), api.RequestOptions{}, &post)
	return post, err
}

func (c *client) UnlikePost(postID string) (Post, error) {
	var post Post
	err := c.Request(http.MethodDelete, fmt.Sprintf(postLikePattern, url.PathEscape(postID)), api.RequestOptions{}, &post)
	return post, err
}
