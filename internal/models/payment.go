package models

import (
	"time"
)

type TransactionStatus string

const (
	StatusCreated   TransactionStatus = "created"
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// DirectPaymentSession is the sentinel session reference recorded on
// transactions processed without a prior checkout session.
const DirectPaymentSession = "direct_payment"

// Record is a stored gateway record. Sessions and transactions share one
// store keyed by opaque id; consumers distinguish them by concrete type.
type Record interface {
	storeRecord()
}

func (*PaymentSession) storeRecord() {}
func (*Transaction) storeRecord()    {}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentSession is a short-lived handle linking an order and amount to a
// future payment attempt. Sessions are created once and never mutated;
// expiry is advisory and not enforced by the gateway.
type PaymentSession struct {
	ID             string            `json:"id"`
	Amount         float64           `json:"amount"`
	Currency       string            `json:"currency"`
	OrderID        string            `json:"orderId"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"created"`
	ExpiresAt      time.Time         `json:"expires"`
	Customer       Customer          `json:"customer"`
	AllowedMethods []Method          `json:"paymentMethods"`
	CallbackURL    string            `json:"callbackUrl,omitempty"`
}

// Transaction is the stored record of one payment attempt. Only successful
// and pending attempts are persisted; a pending transaction transitions to
// completed or failed exactly once, on verification.
type Transaction struct {
	ID            string
	Amount        float64
	Currency      string
	OrderID       string
	SessionID     string
	Method        Method
	Status        TransactionStatus
	Details       MethodDetails
	CreatedAt     time.Time
	CompletedAt   *time.Time
	FailedAt      *time.Time
	FailureReason string
}

// Clone returns an independent copy so callers can read a transaction
// without holding the store's lock.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	if t.FailedAt != nil {
		at := *t.FailedAt
		c.FailedAt = &at
	}
	return &c
}

type SessionRequest struct {
	OrderID     string    `json:"orderId"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	CallbackURL string    `json:"callbackUrl,omitempty"`
	Customer    *Customer `json:"customer,omitempty"`
}

type SessionResponse struct {
	Success     bool              `json:"success"`
	SessionID   string            `json:"sessionId"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	OrderID     string            `json:"orderId"`
	Status      TransactionStatus `json:"status"`
	Created     time.Time         `json:"created"`
	Expires     time.Time         `json:"expires"`
	CheckoutURL string            `json:"checkoutUrl"`
}

type PaymentRequest struct {
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Method    Method  `json:"method"`
	SessionID string  `json:"sessionId,omitempty"`
	Currency  string  `json:"currency,omitempty"`

	// Card fields
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	CardName   string `json:"cardName,omitempty"`

	// UPI field
	UPIID string `json:"upiId,omitempty"`

	// Net banking field
	BankID string `json:"bankId,omitempty"`

	// Wallet field
	WalletID string `json:"walletId,omitempty"`
}

type PaymentResult struct {
	Success       bool              `json:"success"`
	TransactionID string            `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
	Message       string            `json:"message"`
	Method        Method            `json:"method"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Timestamp     time.Time         `json:"timestamp"`

	CardType   string `json:"cardType,omitempty"`
	Last4      string `json:"last4,omitempty"`
	UPIID      string `json:"upiId,omitempty"`
	BankID     string `json:"bankId,omitempty"`
	BankName   string `json:"bankName,omitempty"`
	WalletID   string `json:"walletId,omitempty"`
	WalletName string `json:"walletName,omitempty"`
}

// ApplyDetails flattens the method variant onto the wire result. The switch
// covers every MethodDetails variant.
func (r *PaymentResult) ApplyDetails(details MethodDetails) {
	switch d := details.(type) {
	case CardDetails:
		r.CardType = d.CardType
		r.Last4 = d.Last4
	case UPIDetails:
		r.UPIID = d.UPIID
	case NetBankingDetails:
		r.BankID = d.BankID
		r.BankName = d.BankName
	case WalletDetails:
		r.WalletID = d.WalletID
		r.WalletName = d.WalletName
	}
}

type VerificationResult struct {
	Success       bool              `json:"success"`
	TransactionID string            `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	OrderID       string            `json:"orderId"`
	Method        Method            `json:"method,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	FailedAt      *time.Time        `json:"failedAt,omitempty"`
	FailureReason string            `json:"failureReason,omitempty"`
}

// TransactionDetails is the full stored record as exposed by the detail
// read. Only the display fields of the transaction's own method are set.
// The failure reason is deliberately absent; verification is the only
// operation that reports it.
type TransactionDetails struct {
	ID          string            `json:"id"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	OrderID     string            `json:"orderId"`
	Status      TransactionStatus `json:"status"`
	Method      Method            `json:"method,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	FailedAt    *time.Time        `json:"failedAt,omitempty"`

	CardType   string `json:"cardType,omitempty"`
	Last4      string `json:"last4,omitempty"`
	UPIID      string `json:"upiId,omitempty"`
	BankID     string `json:"bankId,omitempty"`
	BankName   string `json:"bankName,omitempty"`
	WalletID   string `json:"walletId,omitempty"`
	WalletName string `json:"walletName,omitempty"`
}

// DetailsView builds the detail read projection of a transaction.
func (t *Transaction) DetailsView() *TransactionDetails {
	view := &TransactionDetails{
		ID:          t.ID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		OrderID:     t.OrderID,
		Status:      t.Status,
		Method:      t.Method,
		Timestamp:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
		FailedAt:    t.FailedAt,
	}
	switch d := t.Details.(type) {
	case CardDetails:
		view.CardType = d.CardType
		view.Last4 = d.Last4
	case UPIDetails:
		view.UPIID = d.UPIID
	case NetBankingDetails:
		view.BankID = d.BankID
		view.BankName = d.BankName
	case WalletDetails:
		view.WalletID = d.WalletID
		view.WalletName = d.WalletName
	}
	return view
}

// PaymentEvent is the message published to Kafka after each processed
// payment attempt.
type PaymentEvent struct {
	Type          string            `json:"type"`
	TransactionID string            `json:"transaction_id,omitempty"`
	OrderID       string            `json:"order_id"`
	Method        Method            `json:"method"`
	Status        TransactionStatus `json:"status,omitempty"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Code          string            `json:"code,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}
