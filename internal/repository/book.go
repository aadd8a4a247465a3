package repository

import (
	"context"

	"gorm.io/gorm"

	"libgo-server/internal/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id string) (*model.Book, error)
	ListPublished(ctx context.Context, searchText string, limit int) ([]*model.Book, error)
	ListByLibrarian(ctx context.Context, librarianEmail string) ([]*model.Book, error)
}

type bookRepoImpl struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepoImpl{
		db: db,
	}
}

func (r *bookRepoImpl) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepoImpl) FindByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&book).Error

	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *bookRepoImpl) ListPublished(ctx context.Context, searchText string, limit int) ([]*model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("status = ?", model.BookStatusPublished)
	if searchText != "" {
		q = q.Where("lower(title) LIKE lower(?)", "%"+searchText+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var books []*model.Book
	err := q.Order("created_at DESC").Find(&books).Error

	if err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepoImpl) ListByLibrarian(ctx context.Context, librarianEmail string) ([]*model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})
	if librarianEmail != "" {
		q = q.Where("librarian_email = ?", librarianEmail)
	}

	var books []*model.Book
	err := q.Order("created_at DESC").Find(&books).Error

	if err != nil {
		return nil, err
	}

	return books, nil
}
