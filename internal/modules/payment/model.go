package payment

// Method is the display name of a payment method, as the storefront shows and submits it.
type Method string

const (
	MethodCreditCard   Method = "Credit Card"
	MethodPayPal       Method = "PayPal"
	MethodBankTransfer Method = "Bank Transfer"
	MethodApplePay     Method = "Apple Pay"
	MethodInStore      Method = "Pay in Store"
)

// Result is the outcome of a single payment attempt. Failures are reported here rather
// than as errors.
type Result struct {
	Success       bool   `json:"success"`
	Method        Method `json:"method"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message"`
}
