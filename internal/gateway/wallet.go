package gateway

import (
	"payment-gateway/internal/models"
)

// processWallet resolves wallet payments, with the same tolerant-unknown
// registry policy as net banking.
func (g *Gateway) processWallet(req models.PaymentRequest) (*models.PaymentResult, error) {
	details := models.WalletDetails{
		WalletID:   req.WalletID,
		WalletName: WalletName(req.WalletID),
	}

	if !g.Outcomes.Approve(g.Config.WalletApprovalRate) {
		return nil, newDisplayError(CodeWalletFailed, "Wallet payment failed", details)
	}

	txn, err := g.storeTransaction(req, models.StatusCompleted, details)
	if err != nil {
		return nil, err
	}
	return successResult(txn, "Wallet payment processed successfully"), nil
}
