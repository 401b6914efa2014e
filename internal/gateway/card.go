package gateway

import (
	"payment-gateway/internal/models"
)

// DetectCardType maps the leading digit of a card number to its network.
func DetectCardType(cardNumber string) string {
	if cardNumber == "" {
		return "unknown"
	}
	switch cardNumber[0] {
	case '4':
		return "visa"
	case '5':
		return "mastercard"
	case '3':
		return "amex"
	case '6':
		return "discover"
	default:
		return "unknown"
	}
}

func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

// processCard resolves card payments. The card type and last4 are computed
// up front and returned on every outcome, including declines, for UI
// display.
func (g *Gateway) processCard(req models.PaymentRequest) (*models.PaymentResult, error) {
	details := models.CardDetails{
		CardType: DetectCardType(req.CardNumber),
		Last4:    lastFour(req.CardNumber),
	}

	switch req.CardNumber {
	case TestCardSuccess:
		// Falls through to the stored-transaction path below.
	case TestCardDeclined:
		return nil, newDisplayError(CodeCardDeclined, "Your card was declined", details)
	case TestCardInsufficientFunds:
		return nil, newDisplayError(CodeInsufficientFunds, "Insufficient funds", details)
	case TestCardProcessingError:
		return nil, newDisplayError(CodeProcessingError, "An error occurred while processing your card", details)
	default:
		if !g.Outcomes.Approve(g.Config.CardApprovalRate) {
			return nil, newDisplayError(CodeBankDecline, "Transaction declined by bank", details)
		}
	}

	txn, err := g.storeTransaction(req, models.StatusCompleted, details)
	if err != nil {
		return nil, err
	}
	return successResult(txn, "Payment processed successfully"), nil
}
