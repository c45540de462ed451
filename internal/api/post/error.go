package posts

import (
	"BloggerPlatform/pkg/response"
	"BloggerPlatform/pkg/validation"
)

var (
	ErrPostNotFound = response.NewError(404, "post not found")
	ErrCreatePost   = response.NewError(500, "failed to create post")
	ErrUpdatePost   = response.NewError(500, "failed to update post")
	ErrDeletePost   = response.NewError(500, "failed to delete post")
	ErrGetPosts     = response.NewError(500, "failed to get posts")
	ErrLookupBlog   = response.NewError(500, "failed to look up blog")

	// ErrBlogNotFound is returned by the blog lookup when blogId references
	// nothing. It never reaches the client as is.
	ErrBlogNotFound = response.NewError(404, "blog not found")
)

// BlogNotFoundError is appended to the schema errors when blogId does not
// reference a stored blog.
var BlogNotFoundError = validation.FieldError{
	Message: "there is no blog with an id value of blogId in the database",
	Field:   "blogId",
}
