// ABOUTME: Thumbnail color extraction service for article lead images
// ABOUTME: Uses K-means clustering to find the most prominent color

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
)

const (
	defaultColorValue = 128
	imageHTTPTimeout  = 10 * time.Second
	imageUserAgent    = "Mozilla/5.0 (compatible; NewswireCollector/1.0)"
	colorCacheTTL     = 24 * time.Hour
)

// ThumbnailColorService handles color extraction from images
type ThumbnailColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
	cacheTTL   time.Duration
}

// NewThumbnailColorService creates a new thumbnail color service
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: imageHTTPTimeout,
		},
		cacheTTL: colorCacheTTL,
	}
}

// ExtractColor extracts the prominent color from an image URL
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	// Check cache first
	if s.deps.Cache != nil {
		cacheKey := "thumbnailColor:" + imageURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			// Simple parsing - assumes format "R,G,B"
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}

	if color == nil {
		color = s.defaultColor()
	}

	// Cache the result
	if s.deps.Cache != nil {
		cacheKey := "thumbnailColor:" + imageURL
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), s.cacheTTL)
	}

	return color, nil
}

// extractColorFromURL downloads and extracts color from image
func (s *ThumbnailColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// prominentcolor panics on some malformed images
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// Skip SVG files as they can't be decoded as raster images
	if strings.HasSuffix(strings.ToLower(imageURL), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", imageUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	// Try to extract color with the background masks first
	var colors []prominentcolor.ColorItem
	colors, err = prominentcolor.KmeansWithAll(
		prominentcolor.DefaultK,
		imgNRGBA,
		prominentcolor.ArgumentDefault,
		prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks(),
	)

	// Images the masks swallow whole (white-on-white logos and the
	// like) still yield a color without them
	if err != nil || len(colors) == 0 {
		s.deps.Logger.Debug("Retrying color extraction without masks", map[string]interface{}{
			"url":   imageURL,
			"error": err,
		})

		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.DefaultK,
			imgNRGBA,
			prominentcolor.ArgumentDefault,
			prominentcolor.DefaultSize,
			nil,
		)

		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the default gray color
func (s *ThumbnailColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}

// GetCachedColor retrieves a color from cache without computing it
func (s *ThumbnailColorService) GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}

	if s.deps.Cache != nil {
		cacheKey := "thumbnailColor:" + imageURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	return nil, fmt.Errorf("color not found in cache")
}

// ExtractColorBatch extracts colors for multiple URLs concurrently
func (s *ThumbnailColorService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	resultsMutex := sync.Mutex{}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5)

	for _, url := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				color, err := s.ExtractColor(ctx, imageURL)
				if err != nil {
					s.deps.Logger.Debug("Failed to extract color in batch", map[string]interface{}{
						"url":   imageURL,
						"error": err.Error(),
					})
					return
				}

				resultsMutex.Lock()
				results[imageURL] = color
				resultsMutex.Unlock()

			case <-ctx.Done():
				return
			}
		}(url)
	}

	wg.Wait()

	return results
}
