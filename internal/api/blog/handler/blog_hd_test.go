package blogHandler

import (
	"BloggerPlatform/internal/api/blog"
	"BloggerPlatform/internal/middleware"
	"BloggerPlatform/pkg/bcrypt"
	"BloggerPlatform/pkg/handlerUtil"
	"BloggerPlatform/pkg/metrics"
	"BloggerPlatform/pkg/validation"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"
)

type fakeBlogsService struct {
	list      []blogs.BlogResponse
	blog      blogs.BlogResponse
	err       error
	lastID    string
	lastReq   blogs.BlogRequest
	callCount int

	// outlive makes mutations finish only after the request deadline.
	outlive   bool
	ctxFailed bool
}

func (f *fakeBlogsService) finish(ctx context.Context) error {
	if f.outlive {
		<-ctx.Done()
		if f.ctxFailed {
			return ctx.Err()
		}
	}
	return f.err
}

func (f *fakeBlogsService) GetAllBlogs(_ context.Context) ([]blogs.BlogResponse, error) {
	f.callCount++
	return f.list, f.err
}

func (f *fakeBlogsService) CreateBlog(ctx context.Context, req blogs.BlogRequest) (blogs.BlogResponse, error) {
	f.callCount++
	f.lastReq = req
	return f.blog, f.finish(ctx)
}

func (f *fakeBlogsService) GetBlogByID(_ context.Context, id string) (blogs.BlogResponse, error) {
	f.callCount++
	f.lastID = id
	return f.blog, f.err
}

func (f *fakeBlogsService) UpdateBlog(ctx context.Context, id string, req blogs.BlogRequest) error {
	f.callCount++
	f.lastID = id
	f.lastReq = req
	return f.finish(ctx)
}

func (f *fakeBlogsService) DeleteBlog(_ context.Context, id string) error {
	f.callCount++
	f.lastID = id
	return f.err
}

func newTestApp(t *testing.T, svc *fakeBlogsService) *fiber.App {
	t.Helper()
	return newTestAppWithTimeout(t, svc, 0)
}

func newTestAppWithTimeout(t *testing.T, svc *fakeBlogsService, timeout time.Duration) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	mw, err := middleware.New(log, middleware.Config{
		Hasher:  bcrypt.NewWithCost(cryptobcrypt.MinCost),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		JSONEncoder: handlerUtil.JSON.Marshal,
		JSONDecoder: handlerUtil.JSON.Unmarshal,
	})
	app.Use(mw.NewRequestIDMiddleware())

	h := New(log, mw, svc)
	if timeout > 0 {
		h.timeout = timeout
	}
	h.Start(app)
	return app
}

func authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:qwerty"))
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string, auth bool) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if auth {
		req.Header.Set(fiber.HeaderAuthorization, authHeader())
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

var sampleBlog = blogs.BlogResponse{
	ID:          "01HQ",
	Name:        "gophers",
	Description: "all about go",
	WebsiteURL:  "https://go.dev",
	CreatedAt:   "2024-03-01T10:00:00.000Z",
}

func TestBlogsHandler_GetAllBlogs(t *testing.T) {
	svc := &fakeBlogsService{list: []blogs.BlogResponse{sampleBlog}}
	app := newTestApp(t, svc)

	resp, body := doRequest(t, app, http.MethodGet, "/blogs", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{
		"id":"01HQ","name":"gophers","description":"all about go",
		"websiteUrl":"https://go.dev","createdAt":"2024-03-01T10:00:00.000Z","isMembership":false
	}]`, body)

	svc.list = []blogs.BlogResponse{}
	_, body = doRequest(t, app, http.MethodGet, "/blogs", "", false)
	assert.JSONEq(t, `[]`, body)
}

func TestBlogsHandler_CreateBlog(t *testing.T) {
	t.Run("requires auth", func(t *testing.T) {
		svc := &fakeBlogsService{blog: sampleBlog}
		app := newTestApp(t, svc)

		resp, _ := doRequest(t, app, http.MethodPost, "/blogs", `{"name":"gophers"}`, false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Zero(t, svc.callCount)
	})

	t.Run("created", func(t *testing.T) {
		svc := &fakeBlogsService{blog: sampleBlog}
		app := newTestApp(t, svc)

		resp, body := doRequest(t, app, http.MethodPost, "/blogs",
			`{"name":" gophers ","description":"all about go","websiteUrl":"https://go.dev"}`, true)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, body, `"id":"01HQ"`)
		assert.Equal(t, validation.NewField("gophers"), svc.lastReq.Name)
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		svc := &fakeBlogsService{blog: sampleBlog}
		app := newTestApp(t, svc)

		resp, _ := doRequest(t, app, http.MethodPost, "/blogs", "", true)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.False(t, svc.lastReq.Name.Present)
	})

	t.Run("keys are matched case-sensitively", func(t *testing.T) {
		svc := &fakeBlogsService{blog: sampleBlog}
		app := newTestApp(t, svc)

		doRequest(t, app, http.MethodPost, "/blogs",
			`{"NAME":"upper","DESCRIPTION":"d","WEBSITEURL":"https://go.dev"}`, true)
		assert.False(t, svc.lastReq.Name.Present)
		assert.False(t, svc.lastReq.Description.Present)
		assert.False(t, svc.lastReq.WebsiteURL.Present)

		doRequest(t, app, http.MethodPost, "/blogs",
			`{"name":"ok","description":"d","websiteUrl":"https://go.dev","Name":7}`, true)
		assert.Equal(t, validation.NewField("ok"), svc.lastReq.Name)
		assert.Equal(t, validation.NewField("https://go.dev"), svc.lastReq.WebsiteURL)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeBlogsService{}
		app := newTestApp(t, svc)

		resp, body := doRequest(t, app, http.MethodPost, "/blogs", `{"name":`, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"errorsMessages":[{"message":"request body must be a valid JSON object","field":"body"}]}`, body)
		assert.Zero(t, svc.callCount)

		resp, _ = doRequest(t, app, http.MethodPost, "/blogs", `["x"]`, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation errors", func(t *testing.T) {
		svc := &fakeBlogsService{err: validation.Errors{
			{Message: "name is required", Field: "name"},
			{Message: "incorrect url", Field: "websiteUrl"},
		}}
		app := newTestApp(t, svc)

		resp, body := doRequest(t, app, http.MethodPost, "/blogs", `{}`, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"errorsMessages":[
			{"message":"name is required","field":"name"},
			{"message":"incorrect url","field":"websiteUrl"}
		]}`, body)
	})
}

func TestBlogsHandler_GetBlogByID(t *testing.T) {
	svc := &fakeBlogsService{blog: sampleBlog}
	app := newTestApp(t, svc)

	resp, body := doRequest(t, app, http.MethodGet, "/blogs/01HQ", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"websiteUrl":"https://go.dev"`)
	assert.Equal(t, "01HQ", svc.lastID)

	svc.err = blogs.ErrBlogNotFound
	resp, _ = doRequest(t, app, http.MethodGet, "/blogs/missing", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlogsHandler_UpdateBlog(t *testing.T) {
	svc := &fakeBlogsService{}
	app := newTestApp(t, svc)

	resp, _ := doRequest(t, app, http.MethodPut, "/blogs/01HQ", `{"name":"x"}`, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPut, "/blogs/01HQ",
		`{"name":"renamed","description":"d","websiteUrl":"https://go.dev"}`, true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, "01HQ", svc.lastID)
	assert.Equal(t, "renamed", svc.lastReq.Name.Value)

	svc.err = blogs.ErrBlogNotFound
	resp, _ = doRequest(t, app, http.MethodPut, "/blogs/missing", `{}`, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlogsHandler_DeleteBlog(t *testing.T) {
	svc := &fakeBlogsService{}
	app := newTestApp(t, svc)

	resp, _ := doRequest(t, app, http.MethodDelete, "/blogs/01HQ", "", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, svc.callCount)

	resp, _ = doRequest(t, app, http.MethodDelete, "/blogs/01HQ", "", true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	svc.err = blogs.ErrBlogNotFound
	resp, _ = doRequest(t, app, http.MethodDelete, "/blogs/01HQ", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	svc.err = errors.New("unexpected")
	resp, _ = doRequest(t, app, http.MethodDelete, "/blogs/01HQ", "", true)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestBlogsHandler_MutationDeadline(t *testing.T) {
	t.Run("work finished after the deadline is still reported", func(t *testing.T) {
		svc := &fakeBlogsService{blog: sampleBlog, outlive: true}
		app := newTestAppWithTimeout(t, svc, 20*time.Millisecond)

		resp, body := doRequest(t, app, http.MethodPost, "/blogs",
			`{"name":"gophers","description":"d","websiteUrl":"https://go.dev"}`, true)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, body, `"id":"01HQ"`)

		resp, _ = doRequest(t, app, http.MethodPut, "/blogs/01HQ",
			`{"name":"gophers","description":"d","websiteUrl":"https://go.dev"}`, true)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("work abandoned at the deadline times out", func(t *testing.T) {
		svc := &fakeBlogsService{outlive: true, ctxFailed: true}
		app := newTestAppWithTimeout(t, svc, 20*time.Millisecond)

		resp, _ := doRequest(t, app, http.MethodPost, "/blogs",
			`{"name":"gophers","description":"d","websiteUrl":"https://go.dev"}`, true)
		assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode)
	})
}
