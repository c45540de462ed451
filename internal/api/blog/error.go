package blogs

import "BloggerPlatform/pkg/response"

var (
	ErrBlogNotFound = response.NewError(404, "blog not found")
	ErrCreateBlog   = response.NewError(500, "failed to create blog")
	ErrUpdateBlog   = response.NewError(500, "failed to update blog")
	ErrDeleteBlog   = response.NewError(500, "failed to delete blog")
	ErrGetBlogs     = response.NewError(500, "failed to get blogs")
)
