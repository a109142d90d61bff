package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ModeBankTransfer   = "Bank Transfer"
	ModeWireTransfer   = "Wire Transfer"
	ModeLetterOfCredit = "Letter of Credit"
	ModePayPal         = "PayPal"
)

var instructionMap = map[string][]string{
	ModeBankTransfer: {
		"Bank account details will be shared on your order confirmation email",
		"Transfer the agreed amount of {{amount}} per the payment terms",
		"Quote your order number as the transfer reference",
		"Share the transfer receipt with your account manager",
	},

	ModeWireTransfer: {
		"SWIFT and beneficiary details will be shared on your order confirmation email",
		"Instruct your bank to wire {{amount}} per the payment terms",
		"Quote your order number in the wire remarks",
		"International wires may take 2-5 business days to reflect",
	},

	ModeLetterOfCredit: {
		"Open an irrevocable letter of credit for {{amount}} in our favour",
		"Share the LC draft with your account manager for confirmation before issuance",
		"Shipment is dispatched after the LC is confirmed by our bank",
	},

	ModePayPal: {
		"A PayPal invoice for {{amount}} will be sent to your registered email",
		"Complete the payment from the invoice link",
		"Quote your order number in the payment note",
	},
}

// PaymentInstructions renders the per-mode payment steps for an approved
// order, or nil when the mode has no canned instructions (free-text modes
// agreed offline).
func PaymentInstructions(mode string, amount decimal.Decimal) []string {
	steps, ok := instructionMap[strings.TrimSpace(mode)]
	if !ok {
		return nil
	}

	rendered := make([]string, len(steps))
	for i, step := range steps {
		rendered[i] = strings.ReplaceAll(step, "{{amount}}", amount.StringFixed(2))
	}
	return rendered
}
