package model

import (
	"time"
)

// Article categories mirror the public health-information sections.
var ArticleCategories = []string{
	"covid-19",
	"seasonal-flu",
	"mental-health",
	"general",
}

func ValidArticleCategory(c string) bool {
	for _, v := range ArticleCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Article is a public informational page rendered from a markdown file
// under the content path.
type Article struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	DisplayCategory string    `json:"displayCategory"`
	Excerpt         string    `json:"excerpt"`
	Date            time.Time `json:"date"`
	HTMLContent     string    `json:"htmlContent,omitempty"`
}
