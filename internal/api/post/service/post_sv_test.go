package postService

import (
	"BloggerPlatform/internal/api/post"
	postsRepository "BloggerPlatform/internal/api/post/repository"
	"BloggerPlatform/internal/entity"
	"BloggerPlatform/pkg/utils"
	"BloggerPlatform/pkg/validation"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePosts struct {
	rows  map[string]entity.Post
	order []string
}

func (f *fakePosts) CreatePost(_ context.Context, post entity.Post) error {
	f.rows[post.ID] = post
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakePosts) GetPostByID(_ context.Context, id string) (entity.Post, error) {
	post, ok := f.rows[id]
	if !ok {
		return entity.Post{}, posts.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePosts) GetAllPosts(_ context.Context) ([]entity.Post, error) {
	out := make([]entity.Post, 0, len(f.order))
	for _, id := range f.order {
		if p, ok := f.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePosts) UpdatePost(_ context.Context, post entity.Post) error {
	stored, ok := f.rows[post.ID]
	if !ok {
		return posts.ErrPostNotFound
	}
	post.CreatedAt = stored.CreatedAt
	f.rows[post.ID] = post
	return nil
}

func (f *fakePosts) DeletePost(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return posts.ErrPostNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePosts) DeleteAllPosts(_ context.Context) (int64, error) {
	n := int64(len(f.rows))
	f.rows = map[string]entity.Post{}
	return n, nil
}

type fakeBlogRefs struct {
	names   map[string]string
	lookups int
	err     error
}

func (f *fakeBlogRefs) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	f.lookups++
	if f.err != nil {
		return entity.Blog{}, f.err
	}
	name, ok := f.names[id]
	if !ok {
		return entity.Blog{}, posts.ErrBlogNotFound
	}
	return entity.Blog{ID: id, Name: name}, nil
}

type fakeRepository struct {
	posts   *fakePosts
	blogs   *fakeBlogRefs
	commits int
}

func (r *fakeRepository) NewClient(_ bool) (postsRepository.Client, error) {
	return postsRepository.Client{
		Posts:    r.posts,
		Blogs:    r.blogs,
		Commit:   func() error { r.commits++; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		posts: &fakePosts{rows: map[string]entity.Post{}},
		blogs: &fakeBlogRefs{names: map[string]string{"blog-1": "gophers", "blog-2": "rustaceans"}},
	}
}

func newTestService(t *testing.T, repo *fakeRepository) IPostsService {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	v, err := validation.New()
	require.NoError(t, err)

	return NewPostsService(log, repo, v, utils.New())
}

func validRequest(blogID string) posts.PostRequest {
	return posts.PostRequest{
		Title:            validation.NewField("hello"),
		ShortDescription: validation.NewField("short"),
		Content:          validation.NewField("body"),
		BlogID:           validation.NewField(blogID),
	}
}

func TestPostsService_CreatePost(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	got, err := svc.CreatePost(context.Background(), validRequest("blog-1"))
	require.NoError(t, err)

	assert.Len(t, got.ID, 26)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, "blog-1", got.BlogID)
	assert.Equal(t, "gophers", got.BlogName)
	_, err = time.Parse("2006-01-02T15:04:05.000Z07:00", got.CreatedAt)
	assert.NoError(t, err)

	assert.Equal(t, "gophers", repo.posts.rows[got.ID].BlogName)
	assert.Equal(t, 1, repo.commits)
}

func TestPostsService_CreatePost_UnknownBlog(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	_, err := svc.CreatePost(context.Background(), validRequest("nope"))

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, validation.Errors{posts.BlogNotFoundError}, verrs)
	assert.Empty(t, repo.posts.rows)
	assert.Zero(t, repo.commits)
}

func TestPostsService_CreatePost_SchemaAndBlogErrors(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	req := posts.PostRequest{
		Title:   validation.NewField("a title that is definitely longer than thirty"),
		Content: validation.NewField("   "),
		BlogID:  validation.NewField("nope"),
	}

	_, err := svc.CreatePost(context.Background(), req)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, validation.Errors{
		{Message: "title can't be longer than 30 characters", Field: "title"},
		{Message: "shortDescription is required", Field: "shortDescription"},
		{Message: "empty string can't be used as a content", Field: "content"},
		posts.BlogNotFoundError,
	}, verrs)
}

func TestPostsService_CreatePost_BlogIDMissing(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	req := validRequest("")
	req.BlogID = validation.Field{}

	_, err := svc.CreatePost(context.Background(), req)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, validation.Errors{
		{Message: "blogId is required", Field: "blogId"},
		posts.BlogNotFoundError,
	}, verrs)
	assert.Zero(t, repo.blogs.lookups)
}

func TestPostsService_CreatePost_NULCharacter(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	req := validRequest("blog-1\x00")
	req.Title = validation.NewField("hel\x00lo")

	_, err := svc.CreatePost(context.Background(), req)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, validation.Errors{
		{Message: "title can't contain null characters", Field: "title"},
		{Message: "blogId can't contain null characters", Field: "blogId"},
		posts.BlogNotFoundError,
	}, verrs)
	assert.Empty(t, repo.posts.rows)
}

func TestPostsService_CreatePost_LookupFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.blogs.err = errors.New("db down")
	svc := newTestService(t, repo)

	_, err := svc.CreatePost(context.Background(), validRequest("blog-1"))
	assert.ErrorIs(t, err, posts.ErrLookupBlog)
}

func TestPostsService_DeadlineBeforeCommit(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	created, err := svc.CreatePost(context.Background(), validRequest("blog-1"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.CreatePost(ctx, validRequest("blog-1"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, svc.UpdatePost(ctx, created.ID, validRequest("blog-2")), context.Canceled)
	assert.Equal(t, 1, repo.commits)
}

func TestPostsService_UpdatePost(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	created, err := svc.CreatePost(context.Background(), validRequest("blog-1"))
	require.NoError(t, err)

	req := validRequest("blog-2")
	req.Title = validation.NewField("moved")
	require.NoError(t, svc.UpdatePost(context.Background(), created.ID, req))

	got, err := svc.GetPostByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "moved", got.Title)
	assert.Equal(t, "blog-2", got.BlogID)
	assert.Equal(t, "rustaceans", got.BlogName)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	err = svc.UpdatePost(context.Background(), "missing", validRequest("blog-1"))
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	err = svc.UpdatePost(context.Background(), created.ID, validRequest("nope"))
	var verrs validation.Errors
	assert.True(t, errors.As(err, &verrs))
}

func TestPostsService_GetAllPosts(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	got, err := svc.GetAllPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	first, err := svc.CreatePost(context.Background(), validRequest("blog-1"))
	require.NoError(t, err)
	second, err := svc.CreatePost(context.Background(), validRequest("blog-2"))
	require.NoError(t, err)

	got, err = svc.GetAllPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []posts.PostResponse{first, second}, got)
}

func TestPostsService_DeletePost(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(t, repo)

	created, err := svc.CreatePost(context.Background(), validRequest("blog-1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeletePost(context.Background(), created.ID), posts.ErrPostNotFound)

	_, err = svc.GetPostByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}
