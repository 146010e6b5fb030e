// internal/domain/models/payment.go
package models

// PaymentMethod is how the citizen elects to settle service fees.
// Payment itself is simulated; the selection is recorded on the
// application for the cashier desk.
type PaymentMethod string

const (
	PayCreditCard   PaymentMethod = "credit-card"
	PayBankTransfer PaymentMethod = "bank-transfer"
	PayCash         PaymentMethod = "cash"
)

// PaymentMethods is the canonical ordering for the wizard's payment step.
var PaymentMethods = []PaymentMethod{PayCreditCard, PayBankTransfer, PayCash}

// Valid reports whether m is one of the accepted methods.
func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}
