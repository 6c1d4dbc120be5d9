package dto

// TrendInput is one trend submitted for on-demand generation.
type TrendInput struct {
	Keyword    string  `json:"keyword"`
	Visitors   float64 `json:"visitors"`
	GrowthRate float64 `json:"growthRate"`
}

// GenerateArticleRequest asks for an article about the first submitted trend.
type GenerateArticleRequest struct {
	Trends      []TrendInput `json:"trends"`
	CountryCode string       `json:"countryCode"`
	CountryName string       `json:"countryName"`
}

// TrackViewRequest carries the viewer's geolocation, when the client
// knows it. Missing fields fall back to request headers.
type TrackViewRequest struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// TrackViewResponse reports the article's updated view total.
type TrackViewResponse struct {
	Success bool `json:"success"`
	Views   int  `json:"views"`
}

// CountryTrafficEntry mirrors the dimensions/metrics shape of analytics
// providers so frontends can consume both interchangeably.
type CountryTrafficEntry struct {
	Dimensions []string `json:"dimensions"`
	Metrics    []int    `json:"metrics"`
}
