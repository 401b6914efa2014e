package models

// Method identifies one of the payment instruments the gateway simulates.
type Method string

const (
	MethodCreditCard Method = "credit_card"
	MethodDebitCard  Method = "debit_card"
	MethodUPI        Method = "upi"
	MethodNetBanking Method = "net_banking"
	MethodWallet     Method = "wallet"
)

// SupportedMethods returns the closed set of methods in catalog order.
func SupportedMethods() []Method {
	return []Method{
		MethodCreditCard,
		MethodDebitCard,
		MethodUPI,
		MethodNetBanking,
		MethodWallet,
	}
}

// Supported reports whether m is one of the known payment methods.
func (m Method) Supported() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodUPI, MethodNetBanking, MethodWallet:
		return true
	}
	return false
}

// IsCard reports whether m is a card method (credit or debit).
func (m Method) IsCard() bool {
	return m == MethodCreditCard || m == MethodDebitCard
}

// MethodDetails is the per-method variant attached to a transaction.
// Exactly one concrete type applies to any given transaction; consumers
// match on the concrete type and must cover every variant.
type MethodDetails interface {
	methodDetails()
}

// CardDetails carries the display fields for card payments.
type CardDetails struct {
	CardType string `json:"cardType"`
	Last4    string `json:"last4"`
}

// UPIDetails carries the display fields for UPI payments.
type UPIDetails struct {
	UPIID string `json:"upiId"`
}

// NetBankingDetails carries the display fields for net banking payments.
type NetBankingDetails struct {
	BankID   string `json:"bankId"`
	BankName string `json:"bankName"`
}

// WalletDetails carries the display fields for wallet payments.
type WalletDetails struct {
	WalletID   string `json:"walletId"`
	WalletName string `json:"walletName"`
}

func (CardDetails) methodDetails()       {}
func (UPIDetails) methodDetails()        {}
func (NetBankingDetails) methodDetails() {}
func (WalletDetails) methodDetails()     {}

// Bank is one entry of the net banking registry.
type Bank struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WalletOption is one entry of the wallet registry.
type WalletOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
