package book

import (
	"errors"
	"fmt"
	"net/http"

	"bookshop/internal/httpx"
	"bookshop/internal/platform/logger"
)

type HTTPHandler struct {
	service *Service
	log     *logger.Logger
}

func NewHTTPHandler(service *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// ListAll handles GET /
// @Summary List the catalog
// @Description Return every book keyed by ISBN
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router / [get]
func (h *HTTPHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Books not found")
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// GetByISBN handles GET /isbn/{isbn}
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		h.writeError(w, r, err, fmt.Sprintf("Book with ISBN %s not found", isbn))
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// GetByAuthor handles GET /author/{author}
// @Summary Get books by author
// @Description Exact, case-sensitive match on the author name
// @Tags books
// @Produce json
// @Param author path string true "Author name"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /author/{author} [get]
func (h *HTTPHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.PathValue("author")
	matches, err := h.service.GetByAuthor(r.Context(), author)
	if err != nil {
		h.writeError(w, r, err, fmt.Sprintf("No books found for author: %s", author))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"booksbyauthor": matches}, nil)
}

// GetByTitle handles GET /title/{title}
// @Summary Get books by title
// @Description Exact, case-sensitive match on the title
// @Tags books
// @Produce json
// @Param title path string true "Book title"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /title/{title} [get]
func (h *HTTPHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	matches, err := h.service.GetByTitle(r.Context(), title)
	if err != nil {
		h.writeError(w, r, err, fmt.Sprintf("No books found with title: %s", title))
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"booksbytitle": matches}, nil)
}

// GetReviews handles GET /review/{isbn}
// @Summary Get book reviews
// @Description Reviews keyed by reviewer; an empty object when the book has none
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /review/{isbn} [get]
func (h *HTTPHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	reviews, err := h.service.GetReviews(r.Context(), isbn)
	if err != nil {
		h.writeError(w, r, err, fmt.Sprintf("Reviews not found: Book with ISBN %s does not exist", isbn))
		return
	}
	httpx.JSONSuccess(w, r, reviews, nil)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", notFoundMsg, nil)
	case errors.Is(err, ErrStoreUnavailable):
		h.log.Error("catalog unavailable", "path", r.URL.Path, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONError(w, r, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Catalog is not available", nil)
	default:
		h.log.Error("catalog lookup failed", "path", r.URL.Path, "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
