package form

import (
	"time"

	"github.com/ticketbay/formkit/pkg/validator"
)

// PaymentForm holds the raw checkout payment fields as submitted.
type PaymentForm struct {
	CardNumber   string
	ExpDate      string
	CVV          string
	NameOnCard   string
	BillingEmail string
}

// Validate runs every payment field validator and aggregates the results.
// The clean map always contains the keys "card", "exp_date", "name_on_card"
// and "billing_email"; the CVV contributes only a possible error, never a
// clean value. Card expiry is checked against the supplied reference time.
func (f PaymentForm) Validate(now time.Time) (CleanValues, FieldErrors) {
	clean := make(CleanValues)
	errs := make(FieldErrors)

	card, msg := validator.CardNumber(f.CardNumber)
	clean["card"] = card
	if msg != "" {
		errs["card_number"] = msg
	}

	exp, msg := validator.ExpiryDate(f.ExpDate, now)
	clean["exp_date"] = exp
	if msg != "" {
		errs["exp_date"] = msg
	}

	if _, msg := validator.CVV(f.CVV); msg != "" {
		errs["cvv"] = msg
	}

	name, msg := validator.Name(f.NameOnCard)
	clean["name_on_card"] = name
	if msg != "" {
		errs["name_on_card"] = msg
	}

	email, msg := validator.Email(f.BillingEmail)
	clean["billing_email"] = email
	if msg != "" {
		errs["billing_email"] = msg
	}

	return clean, errs
}
