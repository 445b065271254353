package domain

import (
	"net/url"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Page is a content page managed in the backend.
type Page struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Body     string `json:"body,omitempty"`
	IsInMenu bool   `json:"is_in_menu"`
}

// Slug is the value matched against /pages/:pageName.
func (p Page) Slug() string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(p.Name), "-")
}

// MenuPath is the link rendered in the navigation for this page.
func (p Page) MenuPath() string {
	return "/pages/" + url.PathEscape(whitespaceRun.ReplaceAllString(p.Name, "-"))
}

// FindPageBySlug returns the first page whose slug equals slug. The lookup
// ignores case, so MenuPath links resolve.
func FindPageBySlug(pages []Page, slug string) (Page, bool) {
	slug = whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(slug)), "-")
	for _, p := range pages {
		if p.Slug() == slug {
			return p, true
		}
	}
	return Page{}, false
}
