package models

import "time"

// TestCardSet lists the reserved card numbers that force fixed outcomes.
type TestCardSet struct {
	Success      string `json:"success"`
	Declined     string `json:"declined"`
	Insufficient string `json:"insufficient"`
	Error        string `json:"error"`
}

// TestUPISet lists the reserved UPI ids that force fixed outcomes.
type TestUPISet struct {
	Success    string `json:"success"`
	Declined   string `json:"declined"`
	Processing string `json:"processing"`
}

// MethodOption describes one payment method in the options catalog,
// including its test identifiers or registry entries.
type MethodOption struct {
	ID        Method         `json:"id"`
	Name      string         `json:"name"`
	Enabled   bool           `json:"enabled"`
	TestCards *TestCardSet   `json:"testCards,omitempty"`
	TestUPI   *TestUPISet    `json:"testUpi,omitempty"`
	Banks     []Bank         `json:"banks,omitempty"`
	Options   []WalletOption `json:"options,omitempty"`
}

type PaymentOptionsResponse struct {
	Success         bool           `json:"success"`
	Methods         []MethodOption `json:"methods"`
	PreferredMethod Method         `json:"preferredMethod"`
}

type TestCatalogResponse struct {
	Success   bool        `json:"success"`
	TestCards TestCardSet `json:"testCards"`
	TestUPI   TestUPISet  `json:"testUpi"`
}

type HealthStatus struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	Version          string    `json:"version"`
	Gateway          string    `json:"gateway"`
	SupportedMethods []Method  `json:"supportedMethods"`
}
