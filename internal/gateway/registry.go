package gateway

import (
	"payment-gateway/internal/models"
)

// Reserved card numbers. Each forces a fixed outcome so integration tests
// can reach every terminal state deterministically.
const (
	TestCardSuccess           = "4242424242424242"
	TestCardDeclined          = "4000000000000002"
	TestCardInsufficientFunds = "4000000000000009"
	TestCardProcessingError   = "4000000000000127"
)

// Reserved UPI ids. TestUPIProcessing is the one identifier that creates a
// pending transaction, resolved later by verification.
const (
	TestUPISuccess    = "success@dummypay"
	TestUPIDeclined   = "declined@dummypay"
	TestUPIProcessing = "processing@dummypay"
)

// BankList is the net banking registry. Unknown bank ids are tolerated and
// labeled rather than rejected.
var BankList = []models.Bank{
	{ID: "SBI", Name: "State Bank of India"},
	{ID: "HDFC", Name: "HDFC Bank"},
	{ID: "ICICI", Name: "ICICI Bank"},
	{ID: "AXIS", Name: "Axis Bank"},
	{ID: "KOTAK", Name: "Kotak Mahindra Bank"},
}

// WalletOptions is the wallet registry, with the same tolerant-unknown
// policy as BankList.
var WalletOptions = []models.WalletOption{
	{ID: "paytm", Name: "Paytm"},
	{ID: "phonepe", Name: "PhonePe"},
	{ID: "gpay", Name: "Google Pay"},
	{ID: "amazonpay", Name: "Amazon Pay"},
}

// BankName resolves a bank id against the registry.
func BankName(bankID string) string {
	for _, b := range BankList {
		if b.ID == bankID {
			return b.Name
		}
	}
	return "Unknown Bank"
}

// WalletName resolves a wallet id against the registry.
func WalletName(walletID string) string {
	for _, w := range WalletOptions {
		if w.ID == walletID {
			return w.Name
		}
	}
	return "Unknown Wallet"
}

func testCardSet() models.TestCardSet {
	return models.TestCardSet{
		Success:      TestCardSuccess,
		Declined:     TestCardDeclined,
		Insufficient: TestCardInsufficientFunds,
		Error:        TestCardProcessingError,
	}
}

func testUPISet() models.TestUPISet {
	return models.TestUPISet{
		Success:    TestUPISuccess,
		Declined:   TestUPIDeclined,
		Processing: TestUPIProcessing,
	}
}

// PaymentOptions returns the static method catalog. Pure; touches no store
// state.
func (g *Gateway) PaymentOptions() *models.PaymentOptionsResponse {
	cards := testCardSet()
	upi := testUPISet()

	return &models.PaymentOptionsResponse{
		Success: true,
		Methods: []models.MethodOption{
			{ID: models.MethodCreditCard, Name: "Credit Card", Enabled: true, TestCards: &cards},
			{ID: models.MethodDebitCard, Name: "Debit Card", Enabled: true, TestCards: &cards},
			{ID: models.MethodUPI, Name: "UPI", Enabled: true, TestUPI: &upi},
			{ID: models.MethodNetBanking, Name: "Net Banking", Enabled: true, Banks: BankList},
			{ID: models.MethodWallet, Name: "Wallet", Enabled: true, Options: WalletOptions},
		},
		PreferredMethod: models.MethodCreditCard,
	}
}

// TestCatalog returns only the reserved identifiers.
func (g *Gateway) TestCatalog() *models.TestCatalogResponse {
	return &models.TestCatalogResponse{
		Success:   true,
		TestCards: testCardSet(),
		TestUPI:   testUPISet(),
	}
}

// HealthCheck reports gateway liveness. Pure; touches no store state.
func (g *Gateway) HealthCheck() *models.HealthStatus {
	return &models.HealthStatus{
		Status:           "available",
		Timestamp:        g.Now().UTC(),
		Version:          g.Config.Version,
		Gateway:          g.Config.Name,
		SupportedMethods: models.SupportedMethods(),
	}
}
