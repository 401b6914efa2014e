package gateway

import (
	"payment-gateway/internal/models"
)

// processNetBanking resolves net banking payments. There are no reserved
// bank ids; unknown banks are labeled, not rejected.
func (g *Gateway) processNetBanking(req models.PaymentRequest) (*models.PaymentResult, error) {
	details := models.NetBankingDetails{
		BankID:   req.BankID,
		BankName: BankName(req.BankID),
	}

	if !g.Outcomes.Approve(g.Config.NetBankingApprovalRate) {
		return nil, newDisplayError(CodeNetBankingFailed, "Net banking payment failed", details)
	}

	txn, err := g.storeTransaction(req, models.StatusCompleted, details)
	if err != nil {
		return nil, err
	}
	return successResult(txn, "Net banking payment processed successfully"), nil
}
