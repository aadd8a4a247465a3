package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"libgo-server/internal/model"
	"libgo-server/internal/service"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

func (h *BookHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var book model.Book
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.bookService.Create(ctx, &book); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &book)
}

func (h *BookHandler) GetDetails(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.bookService.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, book)
}

// ListPublished serves the storefront catalog: published books only,
// newest first, optional title search and limit.
func (h *BookHandler) ListPublished(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	books, err := h.bookService.ListPublished(ctx, c.QueryParam("searchText"), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) ListMyBooks(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListByLibrarian(ctx, c.QueryParam("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, books)
}
