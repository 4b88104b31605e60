package form

import (
	"github.com/ticketbay/formkit/pkg/sanitizer"
	"github.com/ticketbay/formkit/pkg/validator"
)

// invalidCredentials is the single message login failures collapse into so
// responses cannot reveal which field was wrong.
const invalidCredentials = "Invalid credentials"

// RegistrationForm holds the raw account sign-up fields as submitted.
type RegistrationForm struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Validate runs every registration field validator. The password is
// validated against the submitted email, the confirmation against the
// submitted password. Clean keys are "full_name", "email", "phone" and
// "password"; the confirmation never contributes a clean value.
func (f RegistrationForm) Validate() (CleanValues, FieldErrors) {
	clean := make(CleanValues)
	errs := make(FieldErrors)

	name, msg := validator.Name(f.FullName)
	clean["full_name"] = name
	if msg != "" {
		errs["full_name"] = msg
	}

	email, msg := validator.Email(f.Email)
	clean["email"] = email
	if msg != "" {
		errs["email"] = msg
	}

	phone, msg := validator.Phone(f.Phone)
	clean["phone"] = phone
	if msg != "" {
		errs["phone"] = msg
	}

	password, msg := validator.Password(f.Password, f.Email)
	clean["password"] = password
	if msg != "" {
		errs["password"] = msg
	}

	if _, msg := validator.PasswordConfirmation(f.Password, f.ConfirmPassword); msg != "" {
		errs["confirm_password"] = msg
	}

	return clean, errs
}

// ProfileForm holds the raw profile-update fields. CurrentEmail is the
// account email of the signed-in user, needed as password context.
type ProfileForm struct {
	FullName           string
	Phone              string
	NewPassword        string
	ConfirmNewPassword string
	CurrentEmail       string
}

// Validate checks name and phone unconditionally. The new password and its
// confirmation are validated only when a new password was actually supplied;
// an empty new password means "no change requested" and produces no password
// errors even if the confirmation field is non-empty.
func (f ProfileForm) Validate() (CleanValues, FieldErrors) {
	clean := make(CleanValues)
	errs := make(FieldErrors)

	name, msg := validator.Name(f.FullName)
	clean["full_name"] = name
	if msg != "" {
		errs["full_name"] = msg
	}

	phone, msg := validator.Phone(f.Phone)
	clean["phone"] = phone
	if msg != "" {
		errs["phone"] = msg
	}

	clean["new_password"] = ""
	if sanitizer.Normalize(f.NewPassword) != "" {
		password, msg := validator.Password(f.NewPassword, f.CurrentEmail)
		clean["new_password"] = password
		if msg != "" {
			errs["new_password"] = msg
		}

		if _, msg := validator.PasswordConfirmation(f.NewPassword, f.ConfirmNewPassword); msg != "" {
			errs["confirm_new_password"] = msg
		}
	}

	return clean, errs
}

// LoginForm holds the raw sign-in fields.
type LoginForm struct {
	Email    string
	Password string
}

// Validate checks only non-emptiness and shape. On any failure both fields
// map to the same generic message, deliberately not revealing whether the
// email or the password was at fault.
func (f LoginForm) Validate() (CleanValues, FieldErrors) {
	clean := make(CleanValues)
	errs := make(FieldErrors)

	email, emailMsg := validator.Email(f.Email)
	password := sanitizer.Normalize(f.Password)

	clean["email"] = email
	clean["password"] = password

	if emailMsg != "" || password == "" {
		clean["email"] = ""
		clean["password"] = ""
		errs["email"] = invalidCredentials
		errs["password"] = invalidCredentials
	}

	return clean, errs
}
