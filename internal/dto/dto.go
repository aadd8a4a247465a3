package dto

import "libgo-server/internal/model"

type CheckoutSessionRequest struct {
	Price         float64 `json:"price"`
	BookTitle     string  `json:"bookTitle"`
	CustomerEmail string  `json:"customerEmail"`
	PaymentID     string  `json:"paymentId"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ModifyResult mirrors the update acknowledgement shape the frontend
// already consumes.
type ModifyResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type ReconcileSuccessResponse struct {
	Success       bool           `json:"success"`
	ModifyInvoice *ModifyResult  `json:"modifyInvoice"`
	PaymentInfo   *model.Invoice `json:"paymentInfo"`
	TransactionID string         `json:"transactionId"`
}

type AlreadyReconciledResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type ProfileUpdateRequest struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
