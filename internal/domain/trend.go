package domain

// Topic is a keyword judged to be currently popular in a country.
// A batch of topics for one country carries unique ranks starting at 1.
type Topic struct {
	Keyword    string  `json:"keyword"`
	Country    string  `json:"country"`
	Rank       int     `json:"rank"`
	Popularity float64 `json:"popularity"`
	GrowthRate float64 `json:"growthRate"`
	IsReal     bool    `json:"isReal"`
}
