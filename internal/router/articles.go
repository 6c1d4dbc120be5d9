package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newsninja/newsninja/internal/apperr"
	"github.com/newsninja/newsninja/internal/domain"
	"github.com/newsninja/newsninja/internal/dto"
	"github.com/newsninja/newsninja/internal/generator"
	"github.com/newsninja/newsninja/internal/storage"
)

const defaultArticleLimit = 20

// Generator produces an article for a topic on demand.
type Generator interface {
	Generate(ctx context.Context, topic domain.Topic, rctx domain.ResearchContext, language, countryName string) (generator.ParsedArticle, error)
}

// Researcher gathers web context for a topic before generation.
type Researcher interface {
	Search(ctx context.Context, query, language string) domain.ResearchContext
}

type ArticlesRouter struct {
	e        *echo.Echo
	reader   storage.ArticleReader
	storer   storage.ArticleStorer
	gen      Generator
	research Researcher
}

func NewArticlesRouter(e *echo.Echo, reader storage.ArticleReader, storer storage.ArticleStorer, gen Generator, research Researcher) *ArticlesRouter {
	return &ArticlesRouter{
		e:        e,
		reader:   reader,
		storer:   storer,
		gen:      gen,
		research: research,
	}
}

func (r *ArticlesRouter) Bind() {
	r.e.GET("/api/articles", r.listHandler)
	r.e.GET("/api/articles/:id", r.getHandler)
	r.e.POST("/api/articles/generate", r.generateHandler)
}

func (r *ArticlesRouter) listHandler(c echo.Context) error {
	limit := defaultArticleLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	country := c.QueryParam("country")

	articles, err := r.reader.GetRecent(c.Request().Context(), limit, country)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.OK(articles))
}

func (r *ArticlesRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid article id", err)
	}

	ctx := c.Request().Context()
	article, err := r.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The response carries the state as read; the bump lands on the
	// next fetch.
	if _, err := r.reader.IncrementViews(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.OK(article))
}

func (r *ArticlesRouter) generateHandler(c echo.Context) error {
	var req dto.GenerateArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Trends) == 0 {
		return apperr.NewValidation("No trends provided")
	}

	trend := req.Trends[0]
	topic := domain.Topic{
		Keyword:    trend.Keyword,
		Country:    req.CountryCode,
		Rank:       1,
		Popularity: trend.Visitors,
		GrowthRate: trend.GrowthRate,
	}
	language := domain.LanguageForCountry(req.CountryCode)

	ctx := c.Request().Context()
	rctx := r.research.Search(ctx, topic.Keyword, language)
	parsed, err := r.gen.Generate(ctx, topic, rctx, language, req.CountryName)
	if err != nil {
		return err
	}

	article := domain.Article{
		Title:         parsed.Title,
		Summary:       parsed.Summary,
		Content:       parsed.Content,
		CountryCode:   req.CountryCode,
		CountryName:   req.CountryName,
		Language:      language,
		TrendKeyword:  topic.Keyword,
		TrendRank:     topic.Rank,
		SearchQueries: []string{topic.Keyword},
		Sources:       []string{"AI Generated", "Web Research"},
		Status:        domain.StatusPublished,
	}

	id, err := r.storer.Save(ctx, article)
	if err != nil {
		return err
	}
	article.ID = id

	return c.JSON(http.StatusOK, dto.OK(article))
}
