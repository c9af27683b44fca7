// ABOUTME: NHK NEWS WEB collector built on the RSS SiteCollector
// ABOUTME: Overrides the default profile with NHK's base URL and wrapper class

package collector

import (
	"newswire-collector/core/extract"
	"newswire-collector/core/interfaces"
)

// NHKPluginName is the registry name the feed table references
const NHKPluginName = "nhk"

// NHKProfile returns the extraction profile for NHK NEWS WEB pages
func NHKProfile() extract.SiteProfile {
	profile := extract.DefaultProfile()
	profile.BaseURL = "https://www3.nhk.or.jp"
	profile.ArticleClass = "nhk-article"
	return profile
}

// NewNHKCollector creates the collector for NHK NEWS WEB feeds
func NewNHKCollector(logger interfaces.Logger, opts Options) *SiteCollector {
	return NewSiteCollector(NHKProfile(), logger, opts)
}
