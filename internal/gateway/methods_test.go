package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/gateway"
	"payment-gateway/internal/models"
)

func upiRequest(upiID string) models.PaymentRequest {
	return models.PaymentRequest{
		OrderID: "order-1",
		Amount:  75,
		Method:  models.MethodUPI,
		UPIID:   upiID,
	}
}

func TestReservedUPISuccess(t *testing.T) {
	for _, approve := range []bool{true, false} {
		g, _ := newTestGateway(approve)

		result, err := g.ProcessPayment(upiRequest(gateway.TestUPISuccess))
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, result.Status)
		assert.Equal(t, gateway.TestUPISuccess, result.UPIID)
	}
}

func TestReservedUPIDeclined(t *testing.T) {
	for _, approve := range []bool{true, false} {
		g, _ := newTestGateway(approve)

		_, err := g.ProcessPayment(upiRequest(gateway.TestUPIDeclined))
		var gwErr *gateway.Error
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, gateway.CodeUPIDeclined, gwErr.Code)

		display, ok := gwErr.Display.(models.UPIDetails)
		require.True(t, ok)
		assert.Equal(t, gateway.TestUPIDeclined, display.UPIID)
	}
}

func TestReservedUPIProcessingStoresPending(t *testing.T) {
	g, store := newTestGateway(false)

	result, err := g.ProcessPayment(upiRequest(gateway.TestUPIProcessing))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.StatusPending, result.Status)
	assert.Equal(t, "UPI payment is processing", result.Message)

	txn, err := store.GetTransaction(result.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, txn.Status)
}

func TestUnknownUPIFollowsOutcomeSource(t *testing.T) {
	g, _ := newTestGateway(true)
	result, err := g.ProcessPayment(upiRequest("someone@upi"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, result.Status)

	g, _ = newTestGateway(false)
	_, err = g.ProcessPayment(upiRequest("someone@upi"))
	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, gateway.CodeUPIFailed, gwErr.Code)
}

func TestNetBankingResolvesBankName(t *testing.T) {
	g, _ := newTestGateway(true)

	result, err := g.ProcessPayment(models.PaymentRequest{
		OrderID: "o1", Amount: 20, Method: models.MethodNetBanking, BankID: "SBI",
	})
	require.NoError(t, err)
	assert.Equal(t, "SBI", result.BankID)
	assert.Equal(t, "State Bank of India", result.BankName)
	assert.Equal(t, models.StatusCompleted, result.Status)
}

func TestNetBankingToleratesUnknownBank(t *testing.T) {
	g, _ := newTestGateway(true)

	result, err := g.ProcessPayment(models.PaymentRequest{
		OrderID: "o1", Amount: 20, Method: models.MethodNetBanking, BankID: "NOSUCH",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown Bank", result.BankName)
}

func TestNetBankingFailure(t *testing.T) {
	g, _ := newTestGateway(false)

	_, err := g.ProcessPayment(models.PaymentRequest{
		OrderID: "o1", Amount: 20, Method: models.MethodNetBanking, BankID: "HDFC",
	})
	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, gateway.CodeNetBankingFailed, gwErr.Code)

	display, ok := gwErr.Display.(models.NetBankingDetails)
	require.True(t, ok)
	assert.Equal(t, "HDFC Bank", display.BankName)
}

func TestWalletResolvesWalletName(t *testing.T) {
	g, _ := newTestGateway(true)

	result, err := g.ProcessPayment(models.PaymentRequest{
		OrderID: "o1", Amount: 20, Method: models.MethodWallet, WalletID: "gpay",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpay", result.WalletID)
	assert.Equal(t, "Google Pay", result.WalletName)
}

func TestWalletToleratesUnknownWallet(t *testing.T) {
	g, _ := newTestGateway(true)

	result, err := g.ProcessPayment(models.PaymentRequest{
		OrderID: "o1", Amount: 20, Method: models.MethodWallet, WalletID: "mysterypay",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown Wallet", result.WalletName)
}

func TestWalletFailure(t *testing.T) {
	g, _ := newTestGateway(false)

	_, err := g.ProcessPayment(models.PaymentRequest{
		OrderID: "o1", Amount: 20, Method: models.MethodWallet, WalletID: "paytm",
	})
	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, gateway.CodeWalletFailed, gwErr.Code)

	display, ok := gwErr.Display.(models.WalletDetails)
	require.True(t, ok)
	assert.Equal(t, "Paytm", display.WalletName)
}

func TestBankAndWalletRegistries(t *testing.T) {
	assert.Equal(t, "ICICI Bank", gateway.BankName("ICICI"))
	assert.Equal(t, "Unknown Bank", gateway.BankName(""))
	assert.Equal(t, "PhonePe", gateway.WalletName("phonepe"))
	assert.Equal(t, "Unknown Wallet", gateway.WalletName("cashapp"))
}
