// Package form composes the field validators into whole-form orchestrators
// for the checkout payment, registration, login and profile-update forms.
//
// Each orchestrator is a pure aggregation: every field validator runs
// regardless of earlier failures, so one submission surfaces all field
// errors at once. The result is a pair of maps:
//
//	clean, errs := form.PaymentForm{...}.Validate(time.Now())
//	if !errs.IsEmpty() {
//	    // render errs back to the user; clean is still fully populated
//	}
//
// CleanValues always carries an entry for every persistable field, empty
// when the field is invalid, so callers can read clean["card"] without a
// presence check. Security-sensitive fields (CVV, password confirmations)
// never get a clean entry at all.
//
// The login orchestrator deliberately collapses every failure into the one
// generic "Invalid credentials" message on both fields, so responses cannot
// be used to enumerate accounts.
package form
