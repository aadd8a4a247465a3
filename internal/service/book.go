package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"libgo-server/internal/model"
	"libgo-server/internal/repository"
)

type BookService interface {
	Create(ctx context.Context, book *model.Book) error
	Get(ctx context.Context, id string) (*model.Book, error)
	ListPublished(ctx context.Context, searchText string, limit int) ([]*model.Book, error)
	ListByLibrarian(ctx context.Context, librarianEmail string) ([]*model.Book, error)
}

type bookServiceImpl struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookServiceImpl{
		bookRepo: bookRepo,
	}
}

func (s *bookServiceImpl) Create(ctx context.Context, book *model.Book) error {
	book.ID = uuid.NewString()
	book.CreatedAt = time.Now()

	return s.bookRepo.Create(ctx, book)
}

func (s *bookServiceImpl) Get(ctx context.Context, id string) (*model.Book, error) {
	return s.bookRepo.FindByID(ctx, id)
}

func (s *bookServiceImpl) ListPublished(ctx context.Context, searchText string, limit int) ([]*model.Book, error) {
	return s.bookRepo.ListPublished(ctx, searchText, limit)
}

func (s *bookServiceImpl) ListByLibrarian(ctx context.Context, librarianEmail string) ([]*model.Book, error) {
	return s.bookRepo.ListByLibrarian(ctx, librarianEmail)
}
