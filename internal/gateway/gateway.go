// Package gateway implements the payment simulation engine: checkout
// sessions, method-specific payment processing with reserved test
// identifiers and probabilistic outcomes, and idempotent verification of
// stored transactions. The engine performs no logging or messaging; those
// policies belong to the surrounding service layer.
package gateway

import (
	"errors"
	"time"

	"payment-gateway/internal/config"
	"payment-gateway/internal/gateway/storage"
	"payment-gateway/internal/models"
	"payment-gateway/internal/utils"
)

type Gateway struct {
	Store    storage.Store
	Outcomes OutcomeSource
	Config   config.GatewayConfig

	// Now and Wait are swappable for deterministic tests. Wait parks only
	// the calling goroutine and is never invoked while holding a lock.
	Now  func() time.Time
	Wait func(time.Duration)
}

func New(store storage.Store, cfg config.GatewayConfig) *Gateway {
	return &Gateway{
		Store:    store,
		Outcomes: NewOutcomeSource(),
		Config:   cfg,
		Now:      time.Now,
		Wait:     time.Sleep,
	}
}

var defaultCustomer = models.Customer{
	Name:  "Guest Customer",
	Email: "guest@example.com",
}

// CreateSession validates the request and stores a new checkout session.
// Expiry is advisory: it is recorded but not enforced by any later
// operation.
func (g *Gateway) CreateSession(req models.SessionRequest) (*models.SessionResponse, error) {
	if req.OrderID == "" || req.Amount <= 0 {
		return nil, newError(CodeValidationError, "Missing required session information")
	}

	currency := req.Currency
	if currency == "" {
		currency = g.Config.Currency
	}
	customer := defaultCustomer
	if req.Customer != nil {
		customer = *req.Customer
	}

	now := g.Now()
	session := &models.PaymentSession{
		ID:             utils.GenerateSessionID(),
		Amount:         req.Amount,
		Currency:       currency,
		OrderID:        req.OrderID,
		Status:         models.StatusCreated,
		CreatedAt:      now,
		ExpiresAt:      now.Add(g.Config.SessionTTL),
		Customer:       customer,
		AllowedMethods: models.SupportedMethods(),
		CallbackURL:    req.CallbackURL,
	}

	if err := g.Store.SaveSession(session); err != nil {
		return nil, err
	}

	return &models.SessionResponse{
		Success:     true,
		SessionID:   session.ID,
		Amount:      session.Amount,
		Currency:    session.Currency,
		OrderID:     session.OrderID,
		Status:      session.Status,
		Created:     session.CreatedAt,
		Expires:     session.ExpiresAt,
		CheckoutURL: g.Config.CheckoutBaseURL + "/" + session.ID,
	}, nil
}

// Session looks up a stored checkout session.
func (g *Gateway) Session(id string) (*models.PaymentSession, error) {
	session, err := g.Store.GetSession(id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newError(CodeSessionNotFound, "Session not found")
	}
	return session, err
}

// ProcessPayment validates the request, waits out the simulated processing
// delay, and routes to the matching method processor. Validation failures
// are reported before the delay; an unknown method is an error, not a
// crash.
func (g *Gateway) ProcessPayment(req models.PaymentRequest) (*models.PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, newError(CodeValidationError, "Payment amount is required")
	}

	switch req.Method {
	case models.MethodCreditCard, models.MethodDebitCard:
		if req.CardNumber == "" || req.ExpiryDate == "" || req.CVV == "" {
			return nil, newError(CodeValidationError, "Missing required card information")
		}
	case models.MethodUPI:
		if req.UPIID == "" {
			return nil, newError(CodeValidationError, "UPI ID is required")
		}
	case models.MethodNetBanking:
		if req.BankID == "" {
			return nil, newError(CodeValidationError, "Bank selection is required")
		}
	case models.MethodWallet:
		if req.WalletID == "" {
			return nil, newError(CodeValidationError, "Wallet selection is required")
		}
	default:
		return nil, newError(CodeUnsupportedMethod, "Unsupported payment method")
	}

	// Simulated bank latency. Real integrations are asynchronous; the wait
	// parks this goroutine only and holds no locks.
	g.Wait(g.Config.ProcessingDelay)

	switch req.Method {
	case models.MethodCreditCard, models.MethodDebitCard:
		return g.processCard(req)
	case models.MethodUPI:
		return g.processUPI(req)
	case models.MethodNetBanking:
		return g.processNetBanking(req)
	default:
		return g.processWallet(req)
	}
}

// VerifyPayment returns the current status of a stored record. Sessions
// and transactions share the store's id space, so verifying a session id
// reports the session's status rather than a not-found error. A pending
// transaction is resolved here, exactly once: the probability draw happens
// inside the store's atomic update, so concurrent verifies cannot double
// roll, and every later call observes the settled status.
func (g *Gateway) VerifyPayment(transactionID string) (*models.VerificationResult, error) {
	if transactionID == "" {
		return nil, newError(CodeMissingTransactionID, "Transaction ID is required")
	}

	rec, err := g.Store.GetRecord(transactionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newError(CodeTransactionNotFound, "Transaction not found")
	}
	if err != nil {
		return nil, err
	}

	session, ok := rec.(*models.PaymentSession)
	if ok {
		return &models.VerificationResult{
			Success:       true,
			TransactionID: session.ID,
			Status:        session.Status,
			Amount:        session.Amount,
			Currency:      session.Currency,
			OrderID:       session.OrderID,
			Timestamp:     session.CreatedAt,
		}, nil
	}
	txn := rec.(*models.Transaction)

	if txn.Status == models.StatusPending {
		txn, err = g.Store.UpdateTransaction(transactionID, func(t *models.Transaction) {
			if t.Status != models.StatusPending {
				return
			}
			now := g.Now()
			if g.Outcomes.Approve(g.Config.PendingResolutionRate) {
				t.Status = models.StatusCompleted
				t.CompletedAt = &now
			} else {
				t.Status = models.StatusFailed
				t.FailedAt = &now
				t.FailureReason = "Transaction timed out"
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return &models.VerificationResult{
		Success:       true,
		TransactionID: txn.ID,
		Status:        txn.Status,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		OrderID:       txn.OrderID,
		Method:        txn.Method,
		Timestamp:     txn.CreatedAt,
		CompletedAt:   txn.CompletedAt,
		FailedAt:      txn.FailedAt,
		FailureReason: txn.FailureReason,
	}, nil
}

// TransactionDetails returns the full stored record, session or
// transaction. This is the one read path with no side effects: a pending
// transaction stays pending.
func (g *Gateway) TransactionDetails(transactionID string) (*models.TransactionDetails, error) {
	if transactionID == "" {
		return nil, newError(CodeMissingTransactionID, "Transaction ID is required")
	}

	rec, err := g.Store.GetRecord(transactionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newError(CodeTransactionNotFound, "Transaction not found")
	}
	if err != nil {
		return nil, err
	}

	if session, ok := rec.(*models.PaymentSession); ok {
		return &models.TransactionDetails{
			ID:        session.ID,
			Amount:    session.Amount,
			Currency:  session.Currency,
			OrderID:   session.OrderID,
			Status:    session.Status,
			Timestamp: session.CreatedAt,
		}, nil
	}

	return rec.(*models.Transaction).DetailsView(), nil
}

// storeTransaction persists a successful (or pending) attempt. Failed
// attempts never reach this point; they are returned to the caller and
// forgotten.
func (g *Gateway) storeTransaction(req models.PaymentRequest, status models.TransactionStatus, details models.MethodDetails) (*models.Transaction, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = models.DirectPaymentSession
	}
	currency := req.Currency
	if currency == "" {
		currency = g.Config.Currency
	}

	txn := &models.Transaction{
		ID:        utils.GenerateTransactionID(),
		Amount:    req.Amount,
		Currency:  currency,
		OrderID:   req.OrderID,
		SessionID: sessionID,
		Method:    req.Method,
		Status:    status,
		Details:   details,
		CreatedAt: g.Now(),
	}

	if err := g.Store.SaveTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func successResult(txn *models.Transaction, message string) *models.PaymentResult {
	result := &models.PaymentResult{
		Success:       true,
		TransactionID: txn.ID,
		Status:        txn.Status,
		Message:       message,
		Method:        txn.Method,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Timestamp:     txn.CreatedAt,
	}
	result.ApplyDetails(txn.Details)
	return result
}
