// ABOUTME: Embedded payload strategy reads article data from a script tag
// ABOUTME: Tolerates both JS object literal and strict JSON field styles

package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newswire-collector/core/domain"
	textutils "newswire-collector/pkg/utils/text"
)

// summaryHeading labels the summary section built from the payload
const summaryHeading = "サマリー"

var embeddedFieldNames = []string{"title", "img", "summary", "more", "datetime", "publishedAt"}

type fieldPatterns struct {
	js   *regexp.Regexp // key: 'value'
	json *regexp.Regexp // "key": "value"
}

func buildFieldPatterns(names []string) map[string]fieldPatterns {
	m := make(map[string]fieldPatterns, len(names))
	for _, name := range names {
		m[name] = fieldPatterns{
			js:   regexp.MustCompile(`["']?\b` + name + `\b["']?\s*:\s*'((?:[^'\\]|\\.)*)'`),
			json: regexp.MustCompile(`["']?\b` + name + `\b["']?\s*:\s*"((?:[^"\\]|\\.)*)"`),
		}
	}
	return m
}

var embeddedFieldPatterns = buildFieldPatterns(embeddedFieldNames)

// bodyArrayPattern captures the body array up to the last object's close
var bodyArrayPattern = regexp.MustCompile(`(?s)["']?\bbody\b["']?\s*:\s*(\[.*?\}\s*\])`)

// bodyBlockPattern splits a non-JSON body array into object blocks
var bodyBlockPattern = regexp.MustCompile(`(?s)\{[^{}]*\}`)

type embeddedBodyElement struct {
	DetailType string `json:"detailType"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Img        string `json:"img"`
}

type embeddedPayload struct {
	Title     string
	Img       string
	Summary   string
	More      string
	Published string
	Body      []embeddedBodyElement
}

func (p embeddedPayload) isEmpty() bool {
	return p.Title == "" && p.Img == "" && p.Summary == "" &&
		p.More == "" && p.Published == "" && len(p.Body) == 0
}

// extractEmbedded locates the marker script and builds a result from its
// fields. A marker with no parseable fields is logged and treated as a
// miss so the chain continues.
func (p *Pipeline) extractEmbedded(doc *goquery.Document, pageURL string) (Result, bool) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), p.profile.MarkerToken) {
			script = s.Text()
			return false
		}
		return true
	})

	if script == "" {
		return Result{}, false
	}

	payload := parseEmbeddedPayload(script)
	if payload.isEmpty() {
		p.logger.Warn("embedded payload marker present but no fields parsed", map[string]interface{}{
			"url":    pageURL,
			"marker": p.profile.MarkerToken,
		})
		return Result{}, false
	}

	base := p.profile.BaseURL
	if base == "" {
		base = pageURL
	}

	var sections []domain.Section
	var images []string

	if summary := textutils.Normalize(payload.Summary); summary != "" {
		sections = append(sections, domain.Section{
			Heading: summaryHeading,
			Level:   2,
			Content: []string{summary},
		})
	}

	for _, el := range payload.Body {
		section := domain.Section{}
		if heading := textutils.Normalize(el.Title); heading != "" {
			section.Heading = heading
			section.Level = 2
		}
		if body := textutils.Normalize(el.Text); body != "" {
			section.Content = append(section.Content, body)
		}
		if el.Img != "" {
			images = append(images, resolveURL(base, textutils.Normalize(el.Img)))
		}
		if section.Heading != "" || len(section.Content) > 0 {
			sections = append(sections, section)
		}
	}

	if more := textutils.Normalize(payload.More); more != "" {
		if len(sections) > 0 {
			last := &sections[len(sections)-1]
			last.Content = append(last.Content, more)
		} else {
			sections = append(sections, domain.Section{Content: []string{more}})
		}
	}

	structured := domain.StructuredContent{
		Sections: sections,
		Images:   images,
	}

	// Meta-only payloads have nothing to render; treated as a miss so
	// the selector strategies can read the body from the page itself
	if structured.IsZero() {
		p.logger.Debug("embedded payload carried no body", map[string]interface{}{
			"url":    pageURL,
			"marker": p.profile.MarkerToken,
		})
		return Result{}, false
	}

	result := Result{
		Structured:    structured,
		Title:         textutils.Normalize(payload.Title),
		PublishedHint: strings.TrimSpace(payload.Published),
	}

	if img := textutils.Normalize(payload.Img); img != "" {
		result.Thumbnail = resolveURL(base, img)
	}

	return result, true
}

// parseEmbeddedPayload pulls known fields out of the marker script text
func parseEmbeddedPayload(script string) embeddedPayload {
	fields := make(map[string]string, len(embeddedFieldNames))
	for name, patterns := range embeddedFieldPatterns {
		if m := patterns.js.FindStringSubmatch(script); m != nil {
			fields[name] = m[1]
			continue
		}
		if m := patterns.json.FindStringSubmatch(script); m != nil {
			fields[name] = m[1]
		}
	}

	published := fields["datetime"]
	if published == "" {
		published = fields["publishedAt"]
	}

	return embeddedPayload{
		Title:     fields["title"],
		Img:       fields["img"],
		Summary:   fields["summary"],
		More:      fields["more"],
		Published: published,
		Body:      parseBodyArray(script),
	}
}

// parseBodyArray decodes the body array as JSON when possible and falls
// back to a per-block field scan for JS object literals
func parseBodyArray(script string) []embeddedBodyElement {
	m := bodyArrayPattern.FindStringSubmatch(script)
	if m == nil {
		return nil
	}
	raw := m[1]

	var elements []embeddedBodyElement
	if err := json.Unmarshal([]byte(raw), &elements); err == nil {
		return elements
	}

	blocks := bodyBlockPattern.FindAllString(raw, -1)
	elements = make([]embeddedBodyElement, 0, len(blocks))
	for _, block := range blocks {
		el := embeddedBodyElement{
			DetailType: findBlockField(block, "detailType"),
			Type:       findBlockField(block, "type"),
			Title:      findBlockField(block, "title"),
			Text:       findBlockField(block, "text"),
			Img:        findBlockField(block, "img"),
		}
		if el.Title != "" || el.Text != "" || el.Img != "" {
			elements = append(elements, el)
		}
	}
	return elements
}

var blockFieldPatterns = buildFieldPatterns([]string{"detailType", "type", "title", "text", "img"})

func findBlockField(block, name string) string {
	patterns := blockFieldPatterns[name]
	if m := patterns.js.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	if m := patterns.json.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	return ""
}
