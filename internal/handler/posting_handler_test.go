package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobtrail/internal/middleware"
	"jobtrail/internal/model"
	"jobtrail/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPostingService struct {
	posting *model.Posting
	err     error
}

func (s *stubPostingService) CreatePosting(_ context.Context, owner string, req model.CreatePostingRequest) (*model.Posting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Posting{JobTitle: req.JobTitle, Company: req.Company, Stage: model.StageApplied, UserName: owner}, nil
}

func (s *stubPostingService) GetUserPostings(context.Context, string) ([]model.Posting, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.posting == nil {
		return []model.Posting{}, nil
	}
	return []model.Posting{*s.posting}, nil
}

func (s *stubPostingService) GetPostingByID(context.Context, string, string) (*model.Posting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.posting, nil
}

func (s *stubPostingService) UpdatePosting(context.Context, string, string, model.UpdatePostingRequest) (*model.Posting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.posting, nil
}

func (s *stubPostingService) DeletePosting(context.Context, string, string) error {
	return s.err
}

// injectOwner stands in for the token middleware in handler tests.
func injectOwner(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserNameKey, name)
		c.Next()
	}
}

func postingTestRouter(svc service.PostingService, authMW gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewPostingHandler(svc).RegisterPostingRoutes(&r.RouterGroup, authMW)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePostingHandler_Created(t *testing.T) {
	r := postingTestRouter(&stubPostingService{}, injectOwner("alice"))

	w := doJSON(r, http.MethodPost, "/postings", `{"jobTitle":"Eng","company":"Acme"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"userName":"alice"`)
	assert.Contains(t, w.Body.String(), `"stage":"applied"`)
}

func TestCreatePostingHandler_InvalidStage(t *testing.T) {
	r := postingTestRouter(&stubPostingService{}, injectOwner("alice"))

	w := doJSON(r, http.MethodPost, "/postings", `{"jobTitle":"Eng","company":"Acme","stage":"hired"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePostingHandler_MissingOwner(t *testing.T) {
	// No owner in context means the guard upstream did not run; fail closed.
	r := postingTestRouter(&stubPostingService{}, func(c *gin.Context) { c.Next() })

	w := doJSON(r, http.MethodPost, "/postings", `{"jobTitle":"Eng","company":"Acme"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetPostingByIDHandler_NotFound(t *testing.T) {
	r := postingTestRouter(&stubPostingService{err: service.ErrPostingNotFound}, injectOwner("alice"))

	w := doJSON(r, http.MethodGet, "/postings/ffffffffffffffffffffffff", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "posting not found")
}

func TestGetMyPostingsHandler_Empty(t *testing.T) {
	r := postingTestRouter(&stubPostingService{}, injectOwner("alice"))

	w := doJSON(r, http.MethodGet, "/postings/user", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUpdatePostingHandler_NotFound(t *testing.T) {
	r := postingTestRouter(&stubPostingService{err: service.ErrPostingNotFound}, injectOwner("alice"))

	w := doJSON(r, http.MethodPut, "/postings/ffffffffffffffffffffffff", `{"company":"Globex"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostingHandler_Success(t *testing.T) {
	r := postingTestRouter(&stubPostingService{}, injectOwner("alice"))

	w := doJSON(r, http.MethodDelete, "/postings/ffffffffffffffffffffffff", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestDeletePostingHandler_NotFound(t *testing.T) {
	r := postingTestRouter(&stubPostingService{err: service.ErrPostingNotFound}, injectOwner("alice"))

	w := doJSON(r, http.MethodDelete, "/postings/ffffffffffffffffffffffff", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
