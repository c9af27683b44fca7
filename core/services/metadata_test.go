package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"newswire-collector/core/interfaces"
)

const ogPage = `<!DOCTYPE html>
<html><head>
<title>ページタイトル</title>
<meta property="og:title" content="速報タイトル">
<meta property="og:description" content="記事の要約">
<meta property="og:image" content="https://img.example.com/lead.jpg">
<meta name="author" content="山田太郎">
<link rel="icon" href="/favicon.ico">
</head><body><p>本文</p></body></html>`

func TestExtractMetadata_OpenGraphTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(ogPage))
	}))
	defer srv.Close()

	service := NewMetadataService(testDeps())

	got, err := service.ExtractMetadata(context.Background(), srv.URL+"/news/k1.html")

	if err != nil {
		t.Fatalf("ExtractMetadata returned error: %v", err)
	}
	if got == nil {
		t.Fatal("ExtractMetadata returned nil result")
	}
	if got.Title != "速報タイトル" {
		t.Errorf("Title = %q, want og:title value", got.Title)
	}
	if got.Description != "記事の要約" {
		t.Errorf("Description = %q, want og:description value", got.Description)
	}
	if got.Thumbnail != "https://img.example.com/lead.jpg" {
		t.Errorf("Thumbnail = %q, want og:image value", got.Thumbnail)
	}
	if got.Author != "山田太郎" {
		t.Errorf("Author = %q, want author meta value", got.Author)
	}
	if got.Favicon != srv.URL+"/favicon.ico" {
		t.Errorf("Favicon = %q, want absolute icon URL", got.Favicon)
	}

	wantHost := mustHost(t, srv.URL)
	if got.Domain != wantHost {
		t.Errorf("Domain = %q, want %q", got.Domain, wantHost)
	}
}

func TestExtractMetadata_JSONLDFallback(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head>
<script type="application/ld+json">
{"image": "https://img.example.com/ld.jpg", "author": {"name": "佐藤花子"}}
</script>
</head><body></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	service := NewMetadataService(testDeps())

	got, err := service.ExtractMetadata(context.Background(), srv.URL+"/news/k2.html")

	if err != nil {
		t.Fatalf("ExtractMetadata returned error: %v", err)
	}
	if got.Thumbnail != "https://img.example.com/ld.jpg" {
		t.Errorf("Thumbnail = %q, want JSON-LD image", got.Thumbnail)
	}
	if got.Author != "佐藤花子" {
		t.Errorf("Author = %q, want JSON-LD author name", got.Author)
	}
}

func TestExtractMetadata_ServedFromCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should have been served from cache")
	}))
	defer srv.Close()

	pageURL := srv.URL + "/cached.html"
	cached, err := json.Marshal(&interfaces.MetadataResult{
		Title:     "キャッシュ済み",
		Thumbnail: "https://img.example.com/cached.jpg",
	})
	if err != nil {
		t.Fatalf("Failed to marshal cached result: %v", err)
	}

	deps := testDeps()
	deps.Cache = &mockCache{
		getFunc: func(_ context.Context, key string) ([]byte, error) {
			if key != "metadata:"+pageURL {
				t.Errorf("Cache key = %q", key)
			}
			return cached, nil
		},
	}

	service := NewMetadataService(deps)

	got, err := service.ExtractMetadata(context.Background(), pageURL)

	if err != nil {
		t.Fatalf("ExtractMetadata returned error: %v", err)
	}
	if got.Title != "キャッシュ済み" {
		t.Errorf("Title = %q, want cached value", got.Title)
	}
}

func TestExtractMetadata_BlankURL(t *testing.T) {
	service := NewMetadataService(testDeps())

	got, err := service.ExtractMetadata(context.Background(), "about:blank")

	if err != nil {
		t.Fatalf("ExtractMetadata returned error: %v", err)
	}
	if got != nil {
		t.Errorf("ExtractMetadata = %+v, want nil for blank URL", got)
	}
}

func TestExtractMetadata_UnreachableHostReturnsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	pageURL := srv.URL + "/gone.html"
	srv.Close()

	service := NewMetadataService(testDeps())

	got, err := service.ExtractMetadata(context.Background(), pageURL)

	if err != nil {
		t.Fatalf("ExtractMetadata returned error: %v", err)
	}
	if got == nil {
		t.Fatal("ExtractMetadata returned nil, want empty result")
	}
	if got.Title != "" || got.Thumbnail != "" {
		t.Errorf("Result = %+v, want empty fields", got)
	}
}

func TestExtractMetadataBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(ogPage))
	}))
	defer srv.Close()

	service := NewMetadataService(testDeps())

	urls := []string{srv.URL + "/a.html", srv.URL + "/b.html"}
	got := service.ExtractMetadataBatch(context.Background(), urls)

	if len(got) != 2 {
		t.Fatalf("ExtractMetadataBatch returned %d results, want 2", len(got))
	}
	for _, u := range urls {
		result, ok := got[u]
		if !ok || result == nil {
			t.Fatalf("Missing result for %s", u)
		}
		if result.Title != "速報タイトル" {
			t.Errorf("Title for %s = %q", u, result.Title)
		}
	}
}

func mustHost(t *testing.T, rawURL string) string {
	t.Helper()

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("Failed to parse URL %q: %v", rawURL, err)
	}
	return u.Host
}
