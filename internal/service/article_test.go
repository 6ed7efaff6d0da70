package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArticle(t *testing.T, dir, slug, body string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0644)
	if err != nil {
		t.Fatalf("failed to write article %s: %v", slug, err)
	}
}

func newArticleFixture(t *testing.T) *ArticleService {
	t.Helper()

	contentPath := t.TempDir()
	dir := filepath.Join(contentPath, "articles")
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		t.Fatalf("failed to create articles dir: %v", err)
	}

	writeArticle(t, dir, "flu-basics", `---
title: "Flu Basics"
category: "seasonal-flu"
excerpt: "What to know before flu season."
date: "2025-11-01"
---

## Get Vaccinated

Annual shots are the best protection.
`)
	writeArticle(t, dir, "mask-fit", `---
title: "Mask Fit"
category: "covid-19"
excerpt: "A well-fitting mask works better."
date: "2026-01-05"
---

Fit matters more than material.
`)
	writeArticle(t, dir, "no-category", `---
title: "Uncategorized"
date: "2025-06-01"
---

Body text.
`)

	return NewArticleService(contentPath)
}

func TestArticlesListing(t *testing.T) {
	svc := newArticleFixture(t)

	articles, err := svc.Articles()
	if err != nil {
		t.Fatalf("Articles() failed: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}

	// Newest first.
	if articles[0].Slug != "mask-fit" {
		t.Errorf("first article = %s, want newest", articles[0].Slug)
	}

	// Listings carry metadata only.
	for _, a := range articles {
		if a.HTMLContent != "" {
			t.Errorf("listing for %s carries rendered content", a.Slug)
		}
	}
}

func TestArticleRendering(t *testing.T) {
	svc := newArticleFixture(t)

	article, err := svc.Article("flu-basics")
	if err != nil {
		t.Fatalf("Article() failed: %v", err)
	}
	if article.Title != "Flu Basics" {
		t.Errorf("Title = %q", article.Title)
	}
	if article.Category != "seasonal-flu" {
		t.Errorf("Category = %q", article.Category)
	}
	if article.DisplayCategory != "Seasonal Flu" {
		t.Errorf("DisplayCategory = %q, want %q", article.DisplayCategory, "Seasonal Flu")
	}
	if !strings.Contains(article.HTMLContent, "<h2") {
		t.Errorf("HTMLContent missing rendered heading: %q", article.HTMLContent)
	}

	_, err = svc.Article("does-not-exist")
	if err == nil {
		t.Error("missing article did not error")
	}
}

func TestArticleCategoryFallback(t *testing.T) {
	svc := newArticleFixture(t)

	article, err := svc.Article("no-category")
	if err != nil {
		t.Fatalf("Article() failed: %v", err)
	}
	if article.Category != "general" {
		t.Errorf("Category = %q, want fallback %q", article.Category, "general")
	}
	if article.DisplayCategory != "General" {
		t.Errorf("DisplayCategory = %q, want %q", article.DisplayCategory, "General")
	}
}

func TestArticlesByCategory(t *testing.T) {
	svc := newArticleFixture(t)

	articles, err := svc.ByCategory("covid-19")
	if err != nil {
		t.Fatalf("ByCategory() failed: %v", err)
	}
	if len(articles) != 1 || articles[0].Slug != "mask-fit" {
		t.Errorf("ByCategory(covid-19) = %d articles, want only mask-fit", len(articles))
	}
}
