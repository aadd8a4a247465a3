package repository

import (
	"context"

	"gorm.io/gorm"

	"libgo-server/internal/model"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Invoice, error)
	List(ctx context.Context, customerEmail, paymentStatus string) ([]*model.Invoice, error)
}

type invoiceRepoImpl struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepoImpl{
		db: db,
	}
}

// Create inserts an invoice row. The unique index on transaction_id makes
// the insert fail for a transaction that already has an invoice; the
// service layer treats that failure as the already-reconciled signal.
func (r *invoiceRepoImpl) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepoImpl) FindByTransactionID(ctx context.Context, transactionID string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&invoice).Error

	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

func (r *invoiceRepoImpl) List(ctx context.Context, customerEmail, paymentStatus string) ([]*model.Invoice, error) {
	q := r.db.WithContext(ctx).Model(&model.Invoice{})
	if customerEmail != "" {
		q = q.Where("customer_email = ?", customerEmail)
	}
	if paymentStatus != "" {
		q = q.Where("payment_status = ?", paymentStatus)
	}

	var invoices []*model.Invoice
	err := q.Order("paid_at DESC").Find(&invoices).Error

	if err != nil {
		return nil, err
	}

	return invoices, nil
}
