package router

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/newsninja/newsninja/internal/dto"
	"github.com/newsninja/newsninja/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTrendReader struct {
	stats    []storage.CountryStats
	keywords []storage.CountryKeyword

	lastCode  string
	lastLimit int
}

func (s *stubTrendReader) CountryStats(context.Context) ([]storage.CountryStats, error) {
	return s.stats, nil
}

func (s *stubTrendReader) CountryKeywords(_ context.Context, countryCode string, limit int) ([]storage.CountryKeyword, error) {
	s.lastCode = countryCode
	s.lastLimit = limit
	return s.keywords, nil
}

func TestTrendsRouter_Countries(t *testing.T) {
	reader := &stubTrendReader{
		stats: []storage.CountryStats{
			{CountryName: "Italy", CountryCode: "IT", ArticleCount: 4, TotalViews: 120},
			{CountryName: "Germany", CountryCode: "DE", ArticleCount: 2, TotalViews: 30},
		},
	}
	e := newTestEcho()
	NewTrendsRouter(e, reader).Bind()

	rec := doRequest(e, http.MethodGet, "/api/trends/countries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                      `json:"success"`
		Data    []dto.CountryTrafficEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, []string{"Italy", "IT"}, resp.Data[0].Dimensions)
	assert.Equal(t, []int{120}, resp.Data[0].Metrics)
}

func TestTrendsRouter_Country(t *testing.T) {
	reader := &stubTrendReader{
		keywords: []storage.CountryKeyword{
			{Keyword: "elections", Visitors: 5, GrowthRate: 50},
		},
	}
	e := newTestEcho()
	NewTrendsRouter(e, reader).Bind()

	rec := doRequest(e, http.MethodGet, "/api/trends/country/IT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "IT", reader.lastCode)
	assert.Equal(t, countryKeywordLimit, reader.lastLimit)

	var resp struct {
		Data []storage.CountryKeyword `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "elections", resp.Data[0].Keyword)
}

func TestTrendsRouter_Country_Empty(t *testing.T) {
	e := newTestEcho()
	NewTrendsRouter(e, &stubTrendReader{}).Bind()

	rec := doRequest(e, http.MethodGet, "/api/trends/country/JP", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
