// ABOUTME: Article handler serves recently collected articles from the store
// ABOUTME: Read-only view over whichever article store backend is configured

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"newswire-collector/api/dto/mappers"
	"newswire-collector/api/dto/requests"
	"newswire-collector/core/domain"
)

// ArticleSource provides stored articles for serving
type ArticleSource interface {
	Recent(ctx context.Context, limit int) ([]domain.ArticleRecord, error)
}

// ArticleSearcher matches archived articles against a title query
type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error)
}

// ThumbnailColorSource reads already computed thumbnail colors
type ThumbnailColorSource interface {
	GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// ArticleHandler handles article listing and search requests
type ArticleHandler struct {
	store    ArticleSource
	searcher ArticleSearcher
	colors   ThumbnailColorSource
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(store ArticleSource, searcher ArticleSearcher, colors ThumbnailColorSource) *ArticleHandler {
	return &ArticleHandler{store: store, searcher: searcher, colors: colors}
}

// RegisterRoutes registers article routes
func (h *ArticleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /articles", h.Recent)
	mux.HandleFunc("GET /articles/search", h.Search)
}

// Recent handles the GET /articles endpoint
func (h *ArticleHandler) Recent(w http.ResponseWriter, r *http.Request) {
	var query requests.RecentArticlesQuery

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
			return
		}
		query.Limit = limit
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page must be an integer"})
			return
		}
		query.Page = page
	}
	query.ApplyDefaults()

	// Fetch enough of the newest articles to cover the requested page,
	// then cut the window out
	records, err := h.store.Recent(r.Context(), query.Limit*query.Page)
	if err != nil {
		writeError(w, err)
		return
	}
	page := paginate(records, query.Page, query.Limit)
	h.fillCachedColors(r.Context(), page)

	writeJSON(w, http.StatusOK, mappers.ToRecentArticlesResponse(page))
}

// Search handles the GET /articles/search endpoint
func (h *ArticleHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := requests.SearchArticlesQuery{
		Query: r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
			return
		}
		query.Limit = limit
	}
	query.ApplyDefaults()

	records, err := h.searcher.SearchArticles(r.Context(), query.Query, query.Limit)
	if err != nil {
		writeError(w, err)
		return
	}
	h.fillCachedColors(r.Context(), records)

	writeJSON(w, http.StatusOK, mappers.ToRecentArticlesResponse(records))
}

// fillCachedColors decorates records archived before their thumbnail
// color was computed. Only already cached colors are used; serving
// never triggers extraction.
func (h *ArticleHandler) fillCachedColors(ctx context.Context, records []domain.ArticleRecord) {
	if h.colors == nil {
		return
	}

	for i := range records {
		if records[i].ThumbnailColor != nil || records[i].Thumbnail == "" {
			continue
		}
		if cached, err := h.colors.GetCachedColor(ctx, records[i].Thumbnail); err == nil && cached != nil {
			records[i].ThumbnailColor = cached
		}
	}
}

// paginate returns the page-th window of records, sized perPage
func paginate(records []domain.ArticleRecord, page, perPage int) []domain.ArticleRecord {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= len(records) {
		return []domain.ArticleRecord{}
	}
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}
