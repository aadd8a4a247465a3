package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"libgo-server/internal/client"
	"libgo-server/internal/dto"
	"libgo-server/internal/model"
	"libgo-server/internal/repository"
)

// ReconcileOutcome is the terminal state of one reconciliation attempt.
type ReconcileOutcome int

const (
	// OutcomeReconciled: the order was marked paid and a new invoice was
	// written for this transaction.
	OutcomeReconciled ReconcileOutcome = iota
	// OutcomeAlreadyReconciled: an invoice for this transaction already
	// exists; no writes were performed.
	OutcomeAlreadyReconciled
	// OutcomeNotPaid: the gateway does not report the session as paid; no
	// writes were performed and a later attempt can still succeed.
	OutcomeNotPaid
)

type ReconcileResult struct {
	Outcome        ReconcileOutcome
	TransactionID  string
	ModifiedOrders int64
	Invoice        *model.Invoice
}

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *dto.CheckoutSessionRequest) (string, error)
	ReconcileSession(ctx context.Context, sessionID string) (*ReconcileResult, error)
	ListInvoices(ctx context.Context, customerEmail, paymentStatus string) ([]*model.Invoice, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
	siteDomain   string
	orderRepo    repository.OrderRepository
	invoiceRepo  repository.InvoiceRepository
	logger       zerolog.Logger
}

func NewPaymentService(
	stripeClient client.StripeClient,
	siteDomain string,
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
	logger zerolog.Logger,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
		siteDomain:   siteDomain,
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		logger:       logger,
	}
}

// CreateCheckoutSession builds a hosted Stripe checkout session for a
// pending order and returns the redirect URL. Nothing is persisted here;
// a failed or abandoned session can simply be recreated.
func (s *paymentServiceImpl) CreateCheckoutSession(ctx context.Context, req *dto.CheckoutSessionRequest) (string, error) {
	if req.Price <= 0 {
		return "", fmt.Errorf("%w: price must be positive", ErrInvalidCheckout)
	}
	if req.BookTitle == "" || req.CustomerEmail == "" || req.PaymentID == "" {
		return "", fmt.Errorf("%w: bookTitle, customerEmail and paymentId are required", ErrInvalidCheckout)
	}

	if _, err := s.orderRepo.FindByID(ctx, req.PaymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", ErrOrderNotFound, req.PaymentID)
		}
		return "", fmt.Errorf("find order %s: %w", req.PaymentID, err)
	}

	amount := decimal.NewFromFloat(req.Price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionParams{
		AmountMinorUnits: amount,
		Currency:         "usd",
		ProductName:      fmt.Sprintf("Please pay for book: %s", req.BookTitle),
		CustomerEmail:    req.CustomerEmail,
		Metadata: map[string]string{
			"paymentId": req.PaymentID,
			"bookTitle": req.BookTitle,
		},
		SuccessURL: fmt.Sprintf("%s/dashboard/my-order?session_id={CHECKOUT_SESSION_ID}", s.siteDomain),
		CancelURL:  fmt.Sprintf("%s/dashboard/my-order", s.siteDomain),
	})
	if err != nil {
		return "", fmt.Errorf("stripe create checkout session: %w", err)
	}

	return session.URL, nil
}

// ReconcileSession confirms payment truth with the gateway and applies the
// resulting order update and invoice insert exactly once per transaction.
//
// The order is marked paid before the invoice is inserted. If the process
// dies between the two writes, the order is paid with no invoice yet; a
// retry re-queries the gateway, still finds no invoice and re-runs both
// writes (the order update sets the same values, so re-applying it changes
// nothing). The inverse ordering would leave an invoice behind for an order
// never marked paid, and the existence check would then short-circuit every
// retry before the order could be fixed.
func (s *paymentServiceImpl) ReconcileSession(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	session, err := s.stripeClient.RetrieveCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session %s: %w", sessionID, err)
	}

	transactionID := session.PaymentIntent

	// Fast path. The unique index on transaction_id is the real guard; this
	// check just avoids a pointless order update on replayed confirmations.
	existing, err := s.invoiceRepo.FindByTransactionID(ctx, transactionID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ReconcileError{TransactionID: transactionID, Err: fmt.Errorf("find invoice: %w", err)}
	}
	if existing != nil {
		return &ReconcileResult{
			Outcome:       OutcomeAlreadyReconciled,
			TransactionID: transactionID,
		}, nil
	}

	if session.PaymentStatus != model.PaymentPaid {
		return &ReconcileResult{
			Outcome:       OutcomeNotPaid,
			TransactionID: transactionID,
		}, nil
	}

	orderID := session.Metadata["paymentId"]
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error().
				Str("order_id", orderID).
				Str("transaction_id", transactionID).
				Msg("paid session references a missing order")
			return nil, &ReconcileError{TransactionID: transactionID, Err: fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)}
		}
		return nil, &ReconcileError{TransactionID: transactionID, Err: fmt.Errorf("find order %s: %w", orderID, err)}
	}

	modified, err := s.orderRepo.MarkPaid(ctx, order.ID)
	if err != nil {
		return nil, &ReconcileError{TransactionID: transactionID, Err: fmt.Errorf("mark order paid: %w", err)}
	}

	amount := decimal.NewFromInt(session.AmountTotal).
		Div(decimal.NewFromInt(100))

	invoice := &model.Invoice{
		ID:            uuid.NewString(),
		Amount:        amount.InexactFloat64(),
		CustomerEmail: session.CustomerEmail,
		PaymentID:     orderID,
		BookTitle:     session.Metadata["bookTitle"],
		TransactionID: transactionID,
		PaymentStatus: session.PaymentStatus,
		PaidAt:        time.Now(),
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		if isDuplicate(err) {
			// Lost the race against a concurrent reconciliation of the same
			// transaction. Its invoice is already in place and our order
			// update set the values that update had set.
			return &ReconcileResult{
				Outcome:       OutcomeAlreadyReconciled,
				TransactionID: transactionID,
			}, nil
		}
		return nil, &ReconcileError{TransactionID: transactionID, Err: fmt.Errorf("insert invoice: %w", err)}
	}

	return &ReconcileResult{
		Outcome:        OutcomeReconciled,
		TransactionID:  transactionID,
		ModifiedOrders: modified,
		Invoice:        invoice,
	}, nil
}

func (s *paymentServiceImpl) ListInvoices(ctx context.Context, customerEmail, paymentStatus string) ([]*model.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx, customerEmail, paymentStatus)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
