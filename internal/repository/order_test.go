package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"libgo-server/internal/model"
)

func testOrder(customerEmail string, createdAt time.Time) *model.Order {
	return &model.Order{
		ID:            uuid.NewString(),
		BookID:        uuid.NewString(),
		BookTitle:     "Go in Action",
		CustomerEmail: customerEmail,
		Price:         20.00,
		Status:        model.OrderStatusPending,
		Payment:       model.PaymentUnpaid,
		CreatedAt:     createdAt,
	}
}

func TestOrderRepo_MarkPaid(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("buyer@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, order))

	modified, err := repo.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.Payment)
	assert.Equal(t, model.OrderStatusPendingPickup, reloaded.Status)
}

func TestOrderRepo_MarkPaidIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("buyer@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, order))

	_, err := repo.MarkPaid(ctx, order.ID)
	require.NoError(t, err)

	// re-applying the same transition is a no-op in effect
	_, err = repo.MarkPaid(ctx, order.ID)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.Payment)
	assert.Equal(t, model.OrderStatusPendingPickup, reloaded.Status)
}

func TestOrderRepo_MarkPaidMissingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.MarkPaid(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepo_UpdateStatusLeavesPaymentAlone(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("buyer@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, order))
	_, err := repo.MarkPaid(ctx, order.ID)
	require.NoError(t, err)

	modified, err := repo.UpdateStatus(ctx, order.ID, "picked up")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "picked up", reloaded.Status)
	assert.Equal(t, model.PaymentPaid, reloaded.Payment)
}

func TestOrderRepo_ListByCustomerNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	base := time.Now()
	older := testOrder("buyer@example.com", base.Add(-time.Hour))
	newer := testOrder("buyer@example.com", base)
	foreign := testOrder("other@example.com", base)
	for _, order := range []*model.Order{older, newer, foreign} {
		require.NoError(t, repo.Create(ctx, order))
	}

	orders, err := repo.ListByCustomer(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}
