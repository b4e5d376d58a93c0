package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

// Handler serves the public read-only API. Writes go through the JSON-RPC
// surface at /v1/rpc.
type Handler struct {
	manager *blogportal.Manager
	log     *slog.Logger
}

func NewHandler(manager *blogportal.Manager, log *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		log:     log,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/posts", h.SearchPosts)
	api.GET("/posts/:slug", h.PostBySlug)
	api.GET("/categories", h.Categories)

	e.GET("/health", h.Health)
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// SearchPosts handles GET /api/v1/posts
// @Summary Search published posts
// @Description Retrieves published posts with optional case-insensitive title substring matching and category filtering, sorted by createdAt DESC
// @Tags posts
// @Produce json
// @Param query query string false "Title substring"
// @Param category_id query int false "Filter by category ID"
// @Success 200 {array} rest.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *Handler) SearchPosts(c echo.Context) error {
	var req SearchRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.manager.SearchPosts(c.Request().Context(), req.Query, req.CategoryID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewPosts(posts))
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary Get post by slug
// @Description Retrieves a single post by its slug with categories
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{slug} [get]
func (h *Handler) PostBySlug(c echo.Context) error {
	slug := c.Param("slug")

	post, err := h.manager.PostBySlug(c.Request().Context(), slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories sorted by name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.manager.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
