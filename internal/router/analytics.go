package router

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newsninja/newsninja/internal/apperr"
	"github.com/newsninja/newsninja/internal/domain"
	"github.com/newsninja/newsninja/internal/dto"
	"github.com/newsninja/newsninja/internal/storage"
)

const (
	defaultTopArticleLimit = 10
	viewsByCountryLimit    = 20

	unknownCountry     = "Unknown"
	unknownCountryCode = "XX"
)

type AnalyticsRouter struct {
	e       *echo.Echo
	tracker storage.ViewTracker
	reader  storage.AnalyticsReader
}

func NewAnalyticsRouter(e *echo.Echo, tracker storage.ViewTracker, reader storage.AnalyticsReader) *AnalyticsRouter {
	return &AnalyticsRouter{
		e:       e,
		tracker: tracker,
		reader:  reader,
	}
}

func (r *AnalyticsRouter) Bind() {
	r.e.POST("/api/analytics/track/:articleId", r.trackHandler)
	r.e.GET("/api/analytics/top", r.topHandler)
	r.e.GET("/api/analytics/geography", r.geographyHandler)
}

func (r *AnalyticsRouter) trackHandler(c echo.Context) error {
	articleID, err := uuid.Parse(c.Param("articleId"))
	if err != nil {
		return apperr.NewValidationWrap("invalid article id", err)
	}

	var req dto.TrackViewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	country := req.Country
	countryCode := req.CountryCode
	if country == "" {
		country = unknownCountry
	}
	if countryCode == "" {
		// Edge proxies stamp the viewer's country on the request.
		countryCode = c.Request().Header.Get("CF-IPCountry")
	}
	if countryCode == "" {
		countryCode = c.Request().Header.Get("X-Country-Code")
	}
	if countryCode == "" {
		countryCode = unknownCountryCode
	}

	views, err := r.tracker.Track(c.Request().Context(), domain.ViewEvent{
		ArticleID:         articleID,
		ViewerCountry:     country,
		ViewerCountryCode: countryCode,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TrackViewResponse{Success: true, Views: views})
}

func (r *AnalyticsRouter) topHandler(c echo.Context) error {
	limit := defaultTopArticleLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	articles, err := r.reader.TopArticles(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if articles == nil {
		articles = []storage.TopArticle{}
	}

	return c.JSON(http.StatusOK, dto.OK(articles))
}

func (r *AnalyticsRouter) geographyHandler(c echo.Context) error {
	views, err := r.reader.ViewsByCountry(c.Request().Context(), viewsByCountryLimit)
	if err != nil {
		return err
	}
	if views == nil {
		views = []storage.ViewerCountryViews{}
	}

	return c.JSON(http.StatusOK, dto.OK(views))
}
