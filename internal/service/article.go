package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/markdown"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ArticleService serves the public health-information pages, rendered
// from markdown files under CONTENT_PATH/articles.
type ArticleService struct {
	parser      *markdown.Parser
	contentPath string
	titleCaser  cases.Caser
}

func NewArticleService(contentPath string) *ArticleService {
	return &ArticleService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
		titleCaser:  cases.Title(language.English),
	}
}

func (s *ArticleService) Articles() ([]*model.Article, error) {
	pattern := filepath.Join(s.contentPath, "articles", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	articles := []*model.Article{}
	for _, file := range files {
		slug := strings.TrimSuffix(filepath.Base(file), ".md")
		article, err := s.Article(slug)
		if err != nil {
			continue
		}
		// Listings carry metadata only.
		article.HTMLContent = ""
		articles = append(articles, article)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})

	return articles, nil
}

func (s *ArticleService) ByCategory(category string) ([]*model.Article, error) {
	articles, err := s.Articles()
	if err != nil {
		return nil, err
	}

	filtered := []*model.Article{}
	for _, article := range articles {
		if article.Category == category {
			filtered = append(filtered, article)
		}
	}

	return filtered, nil
}

func (s *ArticleService) Article(slug string) (*model.Article, error) {
	path := filepath.Join(s.contentPath, "articles", slug+".md")
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("article not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		Slug:        slug,
		Category:    "general",
		HTMLContent: string(htmlContent),
	}

	title, ok := meta["title"].(string)
	if ok {
		article.Title = title
	}

	category, ok := meta["category"].(string)
	if ok && model.ValidArticleCategory(category) {
		article.Category = category
	}

	excerpt, ok := meta["excerpt"].(string)
	if ok {
		article.Excerpt = excerpt
	}

	dateStr, ok := meta["date"].(string)
	if ok {
		date, err := time.Parse("2006-01-02", dateStr)
		if err == nil {
			article.Date = date
		}
	}

	// "seasonal-flu" renders as "Seasonal Flu".
	article.DisplayCategory = s.titleCaser.String(strings.ReplaceAll(article.Category, "-", " "))

	return article, nil
}
