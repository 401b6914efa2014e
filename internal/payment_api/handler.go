package payment_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payment-gateway/internal/auth"
	"payment-gateway/internal/gateway"
	"payment-gateway/internal/logger"
	"payment-gateway/internal/models"
	"payment-gateway/internal/utils"
)

// EventPublisher receives one event per processed payment attempt.
type EventPublisher interface {
	PublishPaymentEvent(event models.PaymentEvent) error
}

type Handler struct {
	Gateway *gateway.Gateway
	Logger  *logger.Logger
	Events  EventPublisher
}

func NewHandler(gw *gateway.Gateway, log *logger.Logger, events EventPublisher) *Handler {
	return &Handler{Gateway: gw, Logger: log, Events: events}
}

// RegisterRoutes mounts the payment API. Catalog and checkout endpoints are
// public; session creation, processing and lookups require a bearer token.
func (h *Handler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/payment", func(r chi.Router) {
		r.Get("/options", h.GetPaymentOptions)
		r.Get("/test-cards", h.GetTestCards)
		r.Get("/health", h.HealthCheck)
		r.Get("/checkout/{sessionId}", h.CheckoutInfo)
		r.Get("/checkout/{sessionId}/qr", h.CheckoutQR)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/create-session", h.CreateSession)
			r.Post("/process", h.ProcessPayment)
			r.Get("/verify/{transactionId}", h.VerifyPayment)
			r.Get("/transaction/{transactionId}", h.GetTransactionDetails)
		})
	})
}

// errorResponse mirrors the gateway's failure shape on the wire, with the
// method display fields flattened in.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`

	CardType   string `json:"cardType,omitempty"`
	Last4      string `json:"last4,omitempty"`
	UPIID      string `json:"upiId,omitempty"`
	BankID     string `json:"bankId,omitempty"`
	BankName   string `json:"bankName,omitempty"`
	WalletID   string `json:"walletId,omitempty"`
	WalletName string `json:"walletName,omitempty"`
}

func newErrorResponse(gwErr *gateway.Error) errorResponse {
	resp := errorResponse{Error: gwErr.Message, Code: gwErr.Code}
	switch d := gwErr.Display.(type) {
	case models.CardDetails:
		resp.CardType = d.CardType
		resp.Last4 = d.Last4
	case models.UPIDetails:
		resp.UPIID = d.UPIID
	case models.NetBankingDetails:
		resp.BankID = d.BankID
		resp.BankName = d.BankName
	case models.WalletDetails:
		resp.WalletID = d.WalletID
		resp.WalletName = d.WalletName
	}
	return resp
}

func statusForCode(code string) int {
	switch code {
	case gateway.CodeTransactionNotFound, gateway.CodeSessionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// writeGatewayError renders a gateway outcome; anything else is a 500.
func (h *Handler) writeGatewayError(w http.ResponseWriter, err error) {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		utils.WriteJSON(w, statusForCode(gwErr.Code), newErrorResponse(gwErr))
		return
	}
	h.Logger.Error("API", fmt.Sprintf("unexpected gateway error: %v", err))
	utils.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

// CreateSession creates a checkout session for an order. The authenticated
// customer fills the session's customer block, with test defaults when the
// token carries no profile.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if req.OrderID == "" || req.Amount <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "Order ID and amount are required"})
		return
	}

	if req.Customer == nil {
		customer := models.Customer{Name: "Test User", Email: "test@example.com"}
		if user, ok := auth.UserFromContext(r.Context()); ok {
			if user.Name != "" {
				customer.Name = user.Name
			}
			if user.Email != "" {
				customer.Email = user.Email
			}
		}
		req.Customer = &customer
	}

	session, err := h.Gateway.CreateSession(req)
	if err != nil {
		h.writeGatewayError(w, err)
		return
	}

	h.Logger.LogPayment("SESSION", session.SessionID, fmt.Sprintf("created for order %s", session.OrderID))
	utils.WriteJSON(w, http.StatusOK, session)
}

// ProcessPayment runs one payment attempt and publishes the outcome event.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if req.OrderID == "" || req.Amount <= 0 || req.Method == "" {
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "Please provide order ID, amount, and payment method"})
		return
	}

	result, err := h.Gateway.ProcessPayment(req)
	if err != nil {
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) {
			h.Logger.LogPayment("DECLINED", req.OrderID, gwErr.Error())
			h.publishEvent(models.PaymentEvent{
				Type:      "payment.failed",
				OrderID:   req.OrderID,
				Method:    req.Method,
				Status:    models.StatusFailed,
				Amount:    req.Amount,
				Currency:  req.Currency,
				Code:      gwErr.Code,
				Timestamp: h.Gateway.Now(),
			})
		}
		h.writeGatewayError(w, err)
		return
	}

	h.Logger.LogPayment("PROCESSED", result.TransactionID, fmt.Sprintf("order %s via %s: %s", req.OrderID, result.Method, result.Status))
	h.publishEvent(models.PaymentEvent{
		Type:          "payment." + string(result.Status),
		TransactionID: result.TransactionID,
		OrderID:       req.OrderID,
		Method:        result.Method,
		Status:        result.Status,
		Amount:        result.Amount,
		Currency:      result.Currency,
		Timestamp:     result.Timestamp,
	})

	utils.WriteJSON(w, http.StatusOK, result)
}

// VerifyPayment returns the (possibly just-settled) status of a
// transaction.
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	result, err := h.Gateway.VerifyPayment(transactionID)
	if err != nil {
		h.writeGatewayError(w, err)
		return
	}

	h.Logger.LogPayment("VERIFY", transactionID, string(result.Status))
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetTransactionDetails returns the stored record without mutating it.
func (h *Handler) GetTransactionDetails(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	details, err := h.Gateway.TransactionDetails(transactionID)
	if err != nil {
		h.writeGatewayError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, struct {
		Success     bool                       `json:"success"`
		Transaction *models.TransactionDetails `json:"transaction"`
	}{Success: true, Transaction: details})
}

// GetPaymentOptions serves the static method catalog.
func (h *Handler) GetPaymentOptions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Gateway.PaymentOptions())
}

// GetTestCards serves the reserved test identifiers.
func (h *Handler) GetTestCards(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Gateway.TestCatalog())
}

// HealthCheck reports gateway availability.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.Gateway.HealthCheck()
	utils.WriteJSON(w, http.StatusOK, struct {
		Success   bool            `json:"success"`
		Service   string          `json:"service"`
		Status    string          `json:"status"`
		Timestamp string          `json:"timestamp"`
		Version   string          `json:"version"`
		Methods   []models.Method `json:"methods"`
	}{
		Success:   true,
		Service:   "payment-gateway",
		Status:    health.Status,
		Timestamp: health.Timestamp.Format("2006-01-02T15:04:05.000Z"),
		Version:   health.Version,
		Methods:   health.SupportedMethods,
	})
}

// CheckoutInfo describes a session for the checkout page the client
// renders.
func (h *Handler) CheckoutInfo(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	session, err := h.Gateway.Session(sessionID)
	if err != nil {
		h.writeGatewayError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, struct {
		Success bool                   `json:"success"`
		Session *models.PaymentSession `json:"session"`
		Methods []models.Method        `json:"methods"`
		QRURL   string                 `json:"qrUrl"`
	}{
		Success: true,
		Session: session,
		Methods: session.AllowedMethods,
		QRURL:   fmt.Sprintf("/api/payment/checkout/%s/qr", session.ID),
	})
}

func (h *Handler) publishEvent(event models.PaymentEvent) {
	if h.Events == nil {
		return
	}
	if err := h.Events.PublishPaymentEvent(event); err != nil {
		h.Logger.Error("KAFKA", fmt.Sprintf("failed to publish payment event: %v", err))
	}
}
