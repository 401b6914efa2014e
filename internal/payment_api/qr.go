package payment_api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

// CheckoutQR renders a UPI intent QR code for a checkout session, the same
// code a UPI app would scan at a real checkout.
func (h *Handler) CheckoutQR(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	session, err := h.Gateway.Session(sessionID)
	if err != nil {
		h.writeGatewayError(w, err)
		return
	}

	params := url.Values{}
	params.Set("pa", h.Gateway.Config.MerchantVPA)
	params.Set("pn", h.Gateway.Config.Name)
	params.Set("am", fmt.Sprintf("%.2f", session.Amount))
	params.Set("cu", session.Currency)
	params.Set("tr", session.ID)
	intent := "upi://pay?" + params.Encode()

	png, err := qrcode.Encode(intent, qrcode.Medium, 256)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode checkout QR: %v", err))
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to write QR response: %v", err))
	}
}
