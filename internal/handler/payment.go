package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"libgo-server/internal/client"
	"libgo-server/internal/dto"
	"libgo-server/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	url, err := h.paymentService.CreateCheckoutSession(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCheckout):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, client.ErrGatewayUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "payment gateway unavailable")
		}
		var gwErr *client.GatewayError
		if errors.As(err, &gwErr) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "payment gateway rejected the session")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.CheckoutSessionResponse{URL: url})
}

// ReconcileMyOrder is hit when the buyer lands back on the dashboard after
// checkout. The response always carries a definitive signal: already
// processed, not paid yet, or reconciled now.
func (h *PaymentHandler) ReconcileMyOrder(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing session_id")
	}

	result, err := h.paymentService.ReconcileSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, client.ErrGatewayUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, "payment gateway unavailable")
		}
		var recErr *service.ReconcileError
		if errors.As(err, &recErr) {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"success":       false,
				"error":         "reconciliation write failed",
				"transactionId": recErr.TransactionID,
			})
		}
		return err
	}

	switch result.Outcome {
	case service.OutcomeAlreadyReconciled:
		return c.JSON(http.StatusOK, &dto.AlreadyReconciledResponse{
			Message:       "Already exist",
			TransactionID: result.TransactionID,
		})
	case service.OutcomeNotPaid:
		return c.JSON(http.StatusOK, map[string]bool{"success": false})
	default:
		return c.JSON(http.StatusOK, &dto.ReconcileSuccessResponse{
			Success: true,
			ModifyInvoice: &dto.ModifyResult{
				MatchedCount:  result.ModifiedOrders,
				ModifiedCount: result.ModifiedOrders,
			},
			PaymentInfo:   result.Invoice,
			TransactionID: result.TransactionID,
		})
	}
}

func (h *PaymentHandler) ListInvoices(c echo.Context) error {
	ctx := c.Request().Context()

	invoices, err := h.paymentService.ListInvoices(ctx, c.QueryParam("email"), c.QueryParam("paymentStatus"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, invoices)
}
