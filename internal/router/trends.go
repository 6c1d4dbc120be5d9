package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newsninja/newsninja/internal/apperr"
	"github.com/newsninja/newsninja/internal/dto"
	"github.com/newsninja/newsninja/internal/storage"
)

const countryKeywordLimit = 10

type TrendsRouter struct {
	e      *echo.Echo
	reader storage.TrendReader
}

func NewTrendsRouter(e *echo.Echo, reader storage.TrendReader) *TrendsRouter {
	return &TrendsRouter{
		e:      e,
		reader: reader,
	}
}

func (r *TrendsRouter) Bind() {
	r.e.GET("/api/trends/countries", r.countriesHandler)
	r.e.GET("/api/trends/country/:code", r.countryHandler)
}

func (r *TrendsRouter) countriesHandler(c echo.Context) error {
	stats, err := r.reader.CountryStats(c.Request().Context())
	if err != nil {
		return err
	}

	entries := make([]dto.CountryTrafficEntry, 0, len(stats))
	for _, cs := range stats {
		entries = append(entries, dto.CountryTrafficEntry{
			Dimensions: []string{cs.CountryName, cs.CountryCode},
			Metrics:    []int{cs.TotalViews},
		})
	}

	return c.JSON(http.StatusOK, dto.OK(entries))
}

func (r *TrendsRouter) countryHandler(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return apperr.NewValidation("country code is required")
	}

	keywords, err := r.reader.CountryKeywords(c.Request().Context(), code, countryKeywordLimit)
	if err != nil {
		return err
	}
	if keywords == nil {
		keywords = []storage.CountryKeyword{}
	}

	return c.JSON(http.StatusOK, dto.OK(keywords))
}
