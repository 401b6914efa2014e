package gateway

import (
	"fmt"

	"payment-gateway/internal/models"
)

// Error codes the gateway can return. All of them are expected,
// caller-recoverable outcomes, never panics.
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeUnsupportedMethod    = "UNSUPPORTED_METHOD"
	CodeCardDeclined         = "CARD_DECLINED"
	CodeInsufficientFunds    = "INSUFFICIENT_FUNDS"
	CodeProcessingError      = "PROCESSING_ERROR"
	CodeBankDecline          = "BANK_DECLINE"
	CodeUPIDeclined          = "UPI_DECLINED"
	CodeUPIFailed            = "UPI_FAILED"
	CodeNetBankingFailed     = "NETBANKING_FAILED"
	CodeWalletFailed         = "WALLET_FAILED"
	CodeMissingTransactionID = "MISSING_TRANSACTION_ID"
	CodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
)

// Error is a structured gateway outcome. Display, when set, carries the
// method-specific fields the UI shows alongside the failure (card type and
// last4, the UPI id, the bank or wallet names).
type Error struct {
	Code    string
	Message string
	Display models.MethodDetails
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newDisplayError(code, message string, display models.MethodDetails) *Error {
	return &Error{Code: code, Message: message, Display: display}
}
