package backend

import (
	"context"
	"net/http"

	"github.com/tooswasher/storefront/internal/core/domain"
)

func (c *Client) ListPages(ctx context.Context) ([]domain.Page, error) {
	var out []domain.Page
	err := c.do(ctx, call{
		op: "list_pages", method: http.MethodGet, path: "/pages/",
		generic: "Failed to fetch pages",
	}, &out)
	return out, err
}

func (c *Client) GetPage(ctx context.Context, id int64) (*domain.Page, error) {
	var p domain.Page
	err := c.do(ctx, call{
		op: "get_page", method: http.MethodGet, path: "/pages/{id}",
		pathParams: idParam(id), generic: "Failed to fetch page",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PageBySlug resolves a /pages/:pageName slug: it lists pages, matches the
// slug, then fetches the full page.
func (c *Client) PageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	pages, err := c.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	page, ok := domain.FindPageBySlug(pages, slug)
	if !ok {
		return nil, &domain.RequestFailedError{Operation: "page_by_slug", Status: http.StatusNotFound, Detail: "Page not found"}
	}
	return c.GetPage(ctx, page.ID)
}

func (c *Client) SearchPages(ctx context.Context, query string) ([]domain.Page, error) {
	var out []domain.Page
	err := c.do(ctx, call{
		op: "search_pages", method: http.MethodGet, path: "/pages/search/",
		query: map[string]string{"query": query}, generic: "Search failed",
	}, &out)
	return out, err
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	err := c.do(ctx, call{
		op: "list_events", method: http.MethodGet, path: "/events/",
		generic: "Failed to fetch events",
	}, &out)
	return out, err
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	err := c.do(ctx, call{
		op: "get_event", method: http.MethodGet, path: "/events/{id}",
		pathParams: idParam(id), generic: "Failed to fetch event",
	}, &e)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	var e domain.Event
	err := c.do(ctx, call{
		op: "create_event", method: http.MethodPost, path: "/events/",
		body: in, generic: "Failed to create event",
	}, &e)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) ListActivities(ctx context.Context, eventID int64) ([]domain.Activity, error) {
	var out []domain.Activity
	err := c.do(ctx, call{
		op: "list_activities", method: http.MethodGet, path: "/events/{id}/activities/",
		pathParams: idParam(eventID), generic: "Failed to fetch activities",
	}, &out)
	return out, err
}

func (c *Client) CreateActivity(ctx context.Context, eventID int64, in domain.EventInput) (*domain.Activity, error) {
	var a domain.Activity
	err := c.do(ctx, call{
		op: "create_activity", method: http.MethodPost, path: "/events/{id}/activities/",
		pathParams: idParam(eventID), body: in, generic: "Failed to create activity",
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
