// Package site serves the marketing site's content plumbing: blog posts,
// structured-data builders, and the sitemap.
package site

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed posts/*.md
var postsFS embed.FS

// Frontmatter is the metadata block at the top of each post.
type Frontmatter struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Date        string   `yaml:"date" json:"date"`
	Category    string   `yaml:"category" json:"category"`
	Tags        []string `yaml:"tags" json:"tags"`
	Author      string   `yaml:"author" json:"author"`
	Published   *bool    `yaml:"published" json:"published,omitempty"`
}

// PostSummary is a post without its body, for listings.
type PostSummary struct {
	Slug        string      `json:"slug"`
	Frontmatter Frontmatter `json:"frontmatter"`
}

// Post is a full blog post.
type Post struct {
	PostSummary
	Content string `json:"content"`
}

var (
	loadOnce sync.Once
	posts    []Post
	loadErr  error
)

func loadPosts() {
	entries, err := fs.ReadDir(postsFS, "posts")
	if err != nil {
		loadErr = fmt.Errorf("site: read posts dir: %w", err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		raw, err := postsFS.ReadFile("posts/" + name)
		if err != nil {
			loadErr = fmt.Errorf("site: read post %s: %w", name, err)
			return
		}
		post, err := parsePost(strings.TrimSuffix(name, ".md"), string(raw))
		if err != nil {
			loadErr = err
			return
		}
		posts = append(posts, post)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return postDate(posts[i]).After(postDate(posts[j]))
	})
}

func postDate(p Post) time.Time {
	t, err := time.Parse("2006-01-02", p.Frontmatter.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parsePost(slug, raw string) (Post, error) {
	rest, ok := strings.CutPrefix(raw, "---\n")
	if !ok {
		return Post{}, fmt.Errorf("site: post %s missing frontmatter", slug)
	}
	meta, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return Post{}, fmt.Errorf("site: post %s has unterminated frontmatter", slug)
	}
	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return Post{}, fmt.Errorf("site: post %s frontmatter: %w", slug, err)
	}
	return Post{
		PostSummary: PostSummary{Slug: slug, Frontmatter: fm},
		Content:     strings.TrimSpace(body),
	}, nil
}

// AllPosts returns published posts, newest first.
func AllPosts() ([]PostSummary, error) {
	loadOnce.Do(loadPosts)
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		if p.Frontmatter.Published != nil && !*p.Frontmatter.Published {
			continue
		}
		out = append(out, p.PostSummary)
	}
	return out, nil
}

// PostBySlug returns the full post, or false if it does not exist or is
// unpublished.
func PostBySlug(slug string) (*Post, bool) {
	loadOnce.Do(loadPosts)
	if loadErr != nil {
		return nil, false
	}
	for i := range posts {
		p := &posts[i]
		if p.Slug != slug {
			continue
		}
		if p.Frontmatter.Published != nil && !*p.Frontmatter.Published {
			return nil, false
		}
		return p, true
	}
	return nil, false
}

// PostSlugs returns the slugs of all published posts, newest first.
func PostSlugs() ([]string, error) {
	summaries, err := AllPosts()
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(summaries))
	for _, s := range summaries {
		slugs = append(slugs, s.Slug)
	}
	return slugs, nil
}
