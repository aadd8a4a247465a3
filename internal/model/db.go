package model

import "time"

const (
	// OrderStatusPending is the state an order is placed in. The only
	// transition the payment service owns is pending -> pending for pickup;
	// later fulfillment states belong to librarian/admin flows.
	OrderStatusPending       = "pending"
	OrderStatusPendingPickup = "pending for pickup"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"

	BookStatusPublished = "Published"

	RoleCustomer = "customer"
)

type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	DisplayName string    `gorm:"size:255" json:"displayName"`
	PhotoURL    string    `gorm:"size:512" json:"photoURL"`
	Role        string    `gorm:"size:32;index" json:"role"` // customer, librarian, admin
	CreatedAt   time.Time `json:"createdAt"`
}

type Book struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Title          string    `gorm:"size:255;index;not null" json:"bookTitle"`
	Author         string    `gorm:"size:255" json:"author"`
	Price          float64   `gorm:"not null" json:"price"`
	Status         string    `gorm:"size:32;index;not null" json:"status"` // Draft, Published
	LibrarianEmail string    `gorm:"size:255;index" json:"librarianEmail"`
	CoverURL       string    `gorm:"size:512" json:"coverURL"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Order struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	BookID         string    `gorm:"size:36;index;not null" json:"bookId"`
	BookTitle      string    `gorm:"size:255;not null" json:"bookTitle"`
	CustomerEmail  string    `gorm:"size:255;index;not null" json:"customerEmail"`
	LibrarianEmail string    `gorm:"size:255;index" json:"librarianEmail"`
	Price          float64   `gorm:"not null" json:"price"`
	Status         string    `gorm:"size:32;index;not null" json:"status"`
	Payment        string    `gorm:"size:16;not null" json:"payment"` // unpaid, paid
	CreatedAt      time.Time `json:"createdAt"`
}

// Invoice is the immutable record of a confirmed payment. The unique index
// on TransactionID is what guarantees a single invoice per gateway
// transaction under concurrent reconciliation.
type Invoice struct {
	ID            string  `gorm:"primaryKey;size:36" json:"id"`
	Amount        float64 `gorm:"not null" json:"amount"`
	CustomerEmail string  `gorm:"size:255;index;not null" json:"customerEmail"`
	// PaymentID is the order id carried through the checkout session metadata.
	PaymentID     string    `gorm:"size:36;index;not null" json:"paymentId"`
	BookTitle     string    `gorm:"size:255" json:"bookTitle"`
	TransactionID string    `gorm:"size:128;uniqueIndex;not null" json:"transactionId"`
	PaymentStatus string    `gorm:"size:32;index" json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`
}
