package postHandler

import (
	"BloggerPlatform/internal/api/post"
	"BloggerPlatform/internal/middleware"
	"BloggerPlatform/pkg/bcrypt"
	"BloggerPlatform/pkg/handlerUtil"
	"BloggerPlatform/pkg/metrics"
	"BloggerPlatform/pkg/validation"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"
)

type fakePostsService struct {
	list    []posts.PostResponse
	post    posts.PostResponse
	err     error
	lastID  string
	lastReq posts.PostRequest
	calls   int
}

func (f *fakePostsService) GetAllPosts(_ context.Context) ([]posts.PostResponse, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakePostsService) CreatePost(_ context.Context, req posts.PostRequest) (posts.PostResponse, error) {
	f.calls++
	f.lastReq = req
	return f.post, f.err
}

func (f *fakePostsService) GetPostByID(_ context.Context, id string) (posts.PostResponse, error) {
	f.calls++
	f.lastID = id
	return f.post, f.err
}

func (f *fakePostsService) UpdatePost(_ context.Context, id string, req posts.PostRequest) error {
	f.calls++
	f.lastID = id
	f.lastReq = req
	return f.err
}

func (f *fakePostsService) DeletePost(_ context.Context, id string) error {
	f.calls++
	f.lastID = id
	return f.err
}

func newTestApp(t *testing.T, svc *fakePostsService) *fiber.App {
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
	New(log, mw, svc).Start(app)
	return app
}

func send(t *testing.T, app *fiber.App, method, target, body string, auth bool) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if auth {
		req.Header.Set(fiber.HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:qwerty")))
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

var samplePost = posts.PostResponse{
	ID:               "01HR",
	Title:            "hello",
	ShortDescription: "short",
	Content:          "body",
	BlogID:           "01HQ",
	BlogName:         "gophers",
	CreatedAt:        "2024-03-01T10:00:00.000Z",
}

func TestPostsHandler_Read(t *testing.T) {
	svc := &fakePostsService{list: []posts.PostResponse{samplePost}, post: samplePost}
	app := newTestApp(t, svc)

	status, body := send(t, app, http.MethodGet, "/posts", "", false)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{
		"id":"01HR","title":"hello","shortDescription":"short","content":"body",
		"blogId":"01HQ","blogName":"gophers","createdAt":"2024-03-01T10:00:00.000Z"
	}]`, body)

	status, _ = send(t, app, http.MethodGet, "/posts/01HR", "", false)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "01HR", svc.lastID)

	svc.err = posts.ErrPostNotFound
	status, _ = send(t, app, http.MethodGet, "/posts/01HR", "", false)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPostsHandler_CreatePost(t *testing.T) {
	svc := &fakePostsService{post: samplePost}
	app := newTestApp(t, svc)

	status, _ := send(t, app, http.MethodPost, "/posts", `{}`, false)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Zero(t, svc.calls)

	status, body := send(t, app, http.MethodPost, "/posts",
		`{"title":"hello","shortDescription":"short","content":"body","blogId":" 01HQ ","extra":true}`, true)
	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, body, `"blogName":"gophers"`)
	assert.Equal(t, "01HQ", svc.lastReq.BlogID.Value)

	svc.err = validation.Errors{
		{Message: "blogId must be a string", Field: "blogId"},
		posts.BlogNotFoundError,
	}
	status, body = send(t, app, http.MethodPost, "/posts", `{"blogId":5}`, true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"errorsMessages":[
		{"message":"blogId must be a string","field":"blogId"},
		{"message":"there is no blog with an id value of blogId in the database","field":"blogId"}
	]}`, body)
	assert.False(t, svc.lastReq.BlogID.IsString)
}

func TestPostsHandler_UpdateAndDelete(t *testing.T) {
	svc := &fakePostsService{}
	app := newTestApp(t, svc)

	status, _ := send(t, app, http.MethodPut, "/posts/01HR", `{}`, false)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = send(t, app, http.MethodPut, "/posts/01HR", `{"title":"t"}`, true)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, "t", svc.lastReq.Title.Value)

	status, _ = send(t, app, http.MethodDelete, "/posts/01HR", "", true)
	assert.Equal(t, http.StatusNoContent, status)

	svc.err = posts.ErrPostNotFound
	status, _ = send(t, app, http.MethodPut, "/posts/01HR", `{}`, true)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = send(t, app, http.MethodDelete, "/posts/01HR", "", true)
	assert.Equal(t, http.StatusNotFound, status)
}
