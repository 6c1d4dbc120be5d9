package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newsninja/newsninja/internal/apperr"
	"github.com/newsninja/newsninja/internal/domain"
	"github.com/newsninja/newsninja/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArticleReader struct {
	articles map[uuid.UUID]*domain.Article
	recent   []domain.Article

	lastLimit   int
	lastCountry string
}

func (s *stubArticleReader) GetRecent(_ context.Context, limit int, countryCode string) ([]domain.Article, error) {
	s.lastLimit = limit
	s.lastCountry = countryCode
	return s.recent, nil
}

func (s *stubArticleReader) GetByID(_ context.Context, id uuid.UUID) (*domain.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return nil, apperr.NewNotFound("article")
	}
	copied := *a
	return &copied, nil
}

func (s *stubArticleReader) IncrementViews(_ context.Context, id uuid.UUID) (int, error) {
	a, ok := s.articles[id]
	if !ok {
		return 0, apperr.NewNotFound("article")
	}
	a.Views++
	return a.Views, nil
}

type stubStorer struct {
	saved []domain.Article
}

func (s *stubStorer) Save(_ context.Context, article domain.Article) (uuid.UUID, error) {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	s.saved = append(s.saved, article)
	return article.ID, nil
}

type stubGenerator struct {
	parsed generator.ParsedArticle
	err    error

	lastTopic    domain.Topic
	lastLanguage string
}

func (s *stubGenerator) Generate(_ context.Context, topic domain.Topic, _ domain.ResearchContext, language, _ string) (generator.ParsedArticle, error) {
	s.lastTopic = topic
	s.lastLanguage = language
	return s.parsed, s.err
}

type stubResearcher struct{}

func (stubResearcher) Search(_ context.Context, query, language string) domain.ResearchContext {
	return domain.FallbackContext(query, language)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestArticlesRouter_List(t *testing.T) {
	reader := &stubArticleReader{
		recent: []domain.Article{
			{ID: uuid.New(), Title: "First"},
			{ID: uuid.New(), Title: "Second"},
		},
	}
	e := newTestEcho()
	NewArticlesRouter(e, reader, &stubStorer{}, &stubGenerator{}, stubResearcher{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    []domain.Article `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, defaultArticleLimit, reader.lastLimit)
	assert.Empty(t, reader.lastCountry)
}

func TestArticlesRouter_List_QueryParams(t *testing.T) {
	reader := &stubArticleReader{}
	e := newTestEcho()
	NewArticlesRouter(e, reader, &stubStorer{}, &stubGenerator{}, stubResearcher{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/articles?limit=5&country=IT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, reader.lastLimit)
	assert.Equal(t, "IT", reader.lastCountry)

	rec = doRequest(e, http.MethodGet, "/api/articles?limit=bogus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultArticleLimit, reader.lastLimit)
}

func TestArticlesRouter_GetByID_IncrementsViews(t *testing.T) {
	id := uuid.New()
	reader := &stubArticleReader{
		articles: map[uuid.UUID]*domain.Article{
			id: {ID: id, Title: "Tracked", Views: 0},
		},
	}
	e := newTestEcho()
	NewArticlesRouter(e, reader, &stubStorer{}, &stubGenerator{}, stubResearcher{}).Bind()

	first := doRequest(e, http.MethodGet, "/api/articles/"+id.String(), "")
	require.Equal(t, http.StatusOK, first.Code)

	var resp struct {
		Data domain.Article `json:"data"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Views)

	second := doRequest(e, http.MethodGet, "/api/articles/"+id.String(), "")
	require.Equal(t, http.StatusOK, second.Code)
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Views)
}

func TestArticlesRouter_GetByID_NotFound(t *testing.T) {
	reader := &stubArticleReader{articles: map[uuid.UUID]*domain.Article{}}
	e := newTestEcho()
	NewArticlesRouter(e, reader, &stubStorer{}, &stubGenerator{}, stubResearcher{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/articles/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestArticlesRouter_GetByID_InvalidID(t *testing.T) {
	e := newTestEcho()
	NewArticlesRouter(e, &stubArticleReader{}, &stubStorer{}, &stubGenerator{}, stubResearcher{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/articles/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticlesRouter_Generate(t *testing.T) {
	gen := &stubGenerator{
		parsed: generator.ParsedArticle{Title: "Fresh Take", Summary: "S", Content: "C"},
	}
	storer := &stubStorer{}
	e := newTestEcho()
	NewArticlesRouter(e, &stubArticleReader{}, storer, gen, stubResearcher{}).Bind()

	body := `{"trends":[{"keyword":"solar power","visitors":1200,"growthRate":45}],"countryCode":"IT","countryName":"Italy"}`
	rec := doRequest(e, http.MethodPost, "/api/articles/generate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    domain.Article `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Fresh Take", resp.Data.Title)
	assert.Equal(t, "solar power", resp.Data.TrendKeyword)
	assert.Equal(t, "it", resp.Data.Language)
	assert.Equal(t, "solar power", gen.lastTopic.Keyword)
	assert.Equal(t, float64(1200), gen.lastTopic.Popularity)
	assert.Equal(t, "it", gen.lastLanguage)

	require.Len(t, storer.saved, 1)
	assert.Equal(t, domain.StatusPublished, storer.saved[0].Status)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)
}

func TestArticlesRouter_Generate_NoTrends(t *testing.T) {
	e := newTestEcho()
	NewArticlesRouter(e, &stubArticleReader{}, &stubStorer{}, &stubGenerator{}, stubResearcher{}).Bind()

	rec := doRequest(e, http.MethodPost, "/api/articles/generate", `{"trends":[],"countryCode":"IT"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No trends provided")
}
