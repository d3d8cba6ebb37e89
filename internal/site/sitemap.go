package site

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/perspectivehealth/clinic-site/internal/clinic"
)

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

type staticRoute struct {
	path       string
	changeFreq string
	priority   float64
}

var staticRoutes = []staticRoute{
	{"", "weekly", 1.0},
	{"/services", "monthly", 0.9},
	{"/about", "monthly", 0.8},
	{"/insurance", "monthly", 0.7},
	{"/for-patients", "monthly", 0.7},
	{"/contact", "monthly", 0.8},
	{"/blog", "weekly", 0.7},
}

// SitemapEntries builds the sitemap from static routes, the service catalog,
// and published blog posts.
func SitemapEntries(now time.Time) ([]SitemapEntry, error) {
	base := clinic.Site.URL
	lastMod := now.UTC().Format("2006-01-02")

	var entries []SitemapEntry
	for _, r := range staticRoutes {
		entries = append(entries, SitemapEntry{
			Loc:        base + r.path,
			LastMod:    lastMod,
			ChangeFreq: r.changeFreq,
			Priority:   r.priority,
		})
	}
	for _, slug := range clinic.ServiceSlugs() {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/services/%s", base, slug),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   0.85,
		})
	}
	postSlugs, err := PostSlugs()
	if err != nil {
		return nil, err
	}
	for _, slug := range postSlugs {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/blog/%s", base, slug),
			LastMod:    lastMod,
			ChangeFreq: "yearly",
			Priority:   0.6,
		})
	}
	return entries, nil
}

// SitemapXML renders the sitemap document.
func SitemapXML(now time.Time) ([]byte, error) {
	entries, err := SitemapEntries(now)
	if err != nil {
		return nil, err
	}
	doc, err := xml.MarshalIndent(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("site: marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), doc...), nil
}
