package repository

import (
	"context"

	"gorm.io/gorm"

	"libgo-server/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerEmail string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	MarkPaid(ctx context.Context, id string) (int64, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByCustomer(ctx context.Context, customerEmail string) ([]*model.Order, error) {
	var orders []*model.Order
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if customerEmail != "" {
		q = q.Where("customer_email = ?", customerEmail)
	}
	err := q.Order("created_at DESC").Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus changes only the status column. The payment marker is never
// touched here, so a paid order can not regress to unpaid through the
// librarian/admin status workflow.
func (r *orderRepoImpl) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return result.RowsAffected, nil
}

// MarkPaid applies the one state transition the payment service owns:
// payment unpaid -> paid, status -> pending for pickup. Re-applying the
// same values is a no-op in effect, which is what makes reconciliation
// retries safe.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment": model.PaymentPaid,
			"status":  model.OrderStatusPendingPickup,
		})

	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return result.RowsAffected, nil
}
