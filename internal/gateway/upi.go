package gateway

import (
	"payment-gateway/internal/models"
)

// processUPI resolves UPI payments. TestUPIProcessing is the one path that
// stores a pending transaction; verification settles it later.
func (g *Gateway) processUPI(req models.PaymentRequest) (*models.PaymentResult, error) {
	details := models.UPIDetails{UPIID: req.UPIID}

	switch req.UPIID {
	case TestUPISuccess:
	case TestUPIDeclined:
		return nil, newDisplayError(CodeUPIDeclined, "UPI payment declined", details)
	case TestUPIProcessing:
		txn, err := g.storeTransaction(req, models.StatusPending, details)
		if err != nil {
			return nil, err
		}
		return successResult(txn, "UPI payment is processing"), nil
	default:
		if !g.Outcomes.Approve(g.Config.UPIApprovalRate) {
			return nil, newDisplayError(CodeUPIFailed, "UPI payment failed", details)
		}
	}

	txn, err := g.storeTransaction(req, models.StatusCompleted, details)
	if err != nil {
		return nil, err
	}
	return successResult(txn, "UPI payment processed successfully"), nil
}
