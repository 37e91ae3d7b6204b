package guideline

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	corpus   *Corpus
	maxLimit int
}

func NewHandler(corpus *Corpus, maxLimit int) *Handler {
	if maxLimit <= 0 {
		maxLimit = DefaultSearchLimit
	}
	return &Handler{corpus: corpus, maxLimit: maxLimit}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/guidelines", h.ListBySurgery)
	api.GET("/guidelines/search", h.Search)
	api.GET("/guidelines/critical", h.ListCritical)
}

// Search handles GET /guidelines/search?q=...&surgery=...&limit=N.
func (h *Handler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}
	limit := h.maxLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		if parsed < limit {
			limit = parsed
		}
	}
	matches := h.corpus.Search(query, c.QueryParam("surgery"), limit)
	if matches == nil {
		matches = []Match{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"query":   query,
		"total":   len(matches),
		"results": matches,
	})
}

// ListBySurgery handles GET /guidelines?surgery=... and returns the surgery's
// documents plus the General fallbacks.
func (h *Handler) ListBySurgery(c echo.Context) error {
	surgery := c.QueryParam("surgery")
	if surgery == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter surgery is required")
	}
	docs := h.corpus.BySurgery(surgery)
	if docs == nil {
		docs = []Document{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"surgery": surgery,
		"total":   len(docs),
		"results": docs,
	})
}

// ListCritical handles GET /guidelines/critical?surgery=... (surgery optional).
func (h *Handler) ListCritical(c echo.Context) error {
	docs := h.corpus.Critical(c.QueryParam("surgery"))
	if docs == nil {
		docs = []Document{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total":   len(docs),
		"results": docs,
	})
}
