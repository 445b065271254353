package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// ContentBackend covers static pages and events.
type ContentBackend interface {
	PageBySlug(ctx context.Context, slug string) (*domain.Page, error)
	SearchPages(ctx context.Context, query string) ([]domain.Page, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error)
	ListActivities(ctx context.Context, eventID int64) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, eventID int64, in domain.EventInput) (*domain.Activity, error)
}

type ContentHandler struct {
	content ContentBackend
}

func NewContentHandler(content ContentBackend) *ContentHandler {
	return &ContentHandler{content: content}
}

// Page handles GET /api/pages/:pageName, where pageName is the menu slug.
//
// @Summary      Get a page by its menu slug
// @Tags         content
// @Produce      json
// @Param        pageName  path      string  true  "Page slug, e.g. about-us"
// @Success      200       {object}  domain.Page
// @Failure      404       {object}  errorResponse
// @Router       /api/pages/{pageName} [get]
func (h *ContentHandler) Page(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("pageName"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page name")
	}
	page, err := h.content.PageBySlug(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// SearchPages handles GET /api/pages/search?q=.
func (h *ContentHandler) SearchPages(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusOK, []domain.Page{})
	}
	pages, err := h.content.SearchPages(c.Request().Context(), q)
	if err != nil {
		return err
	}
	if pages == nil {
		pages = []domain.Page{}
	}
	return c.JSON(http.StatusOK, pages)
}

// ListEvents handles GET /api/events.
func (h *ContentHandler) ListEvents(c echo.Context) error {
	events, err := h.content.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id.
//
// @Summary      Get an event with its activities
// @Tags         content
// @Produce      json
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  domain.EventDetails
// @Failure      404  {object}  errorResponse
// @Router       /api/events/{id} [get]
func (h *ContentHandler) GetEvent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	event, err := h.content.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	activities, err := h.content.ListActivities(ctx, id)
	if err != nil {
		return err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return c.JSON(http.StatusOK, domain.EventDetails{Event: *event, Activities: activities})
}

// CreateEvent handles POST /api/events.
func (h *ContentHandler) CreateEvent(c echo.Context) error {
	var req eventRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	event, err := h.content.CreateEvent(c.Request().Context(), domain.EventInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// CreateActivity handles POST /api/events/:id/activities.
func (h *ContentHandler) CreateActivity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req eventRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	activity, err := h.content.CreateActivity(c.Request().Context(), id, domain.EventInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}
