package validators

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-feed-board/models"
)

// Signup field constraints.
const (
	MinUsernameLength = 5
	MinPasswordLength = 10
)

// SignupInput is the raw signup form after trimming.
type SignupInput struct {
	Email    string
	Username string
	Password string
	Bio      string
}

// LoginInput is the raw login form after trimming.
type LoginInput struct {
	Email    string
	Password string
}

// CredentialValidator checks signup and login input against the account
// policy. The email domain allow-list is fixed at construction time.
type CredentialValidator struct {
	allowedDomain string
}

// NewCredentialValidator constructs a [CredentialValidator] restricted to
// the given email domain suffix (e.g. "@zod.com").
func NewCredentialValidator(allowedDomain string) *CredentialValidator {
	return &CredentialValidator{allowedDomain: allowedDomain}
}

// ValidateSignup checks every signup field and returns the first violated
// rule per field. Password complexity (length, digit presence) is a
// signup-time gate only; login never re-checks it.
func (v *CredentialValidator) ValidateSignup(in SignupInput) FieldErrors {
	errs := make(FieldErrors)

	if msg := v.checkEmail(in.Email); msg != "" {
		errs[models.FieldEmail] = msg
	}

	switch {
	case in.Username == "":
		errs[models.FieldUsername] = MsgUsernameRequired
	case len([]rune(in.Username)) < MinUsernameLength:
		errs[models.FieldUsername] = MsgUsernameTooShort
	}

	switch {
	case in.Password == "":
		errs[models.FieldPassword] = MsgPasswordRequired
	case len(in.Password) < MinPasswordLength:
		errs[models.FieldPassword] = MsgPasswordTooShort
	case !containsDigit(in.Password):
		errs[models.FieldPassword] = MsgPasswordNeedsDigit
	}

	if errs.Ok() {
		return nil
	}
	return errs
}

// ValidateLogin checks the login form. Only presence and email shape are
// enforced; complexity rules do not apply to existing credentials.
func (v *CredentialValidator) ValidateLogin(in LoginInput) FieldErrors {
	errs := make(FieldErrors)

	if msg := v.checkEmail(in.Email); msg != "" {
		errs[models.FieldEmail] = msg
	}

	if in.Password == "" {
		errs[models.FieldPassword] = MsgPasswordRequired
	}

	if errs.Ok() {
		return nil
	}
	return errs
}

// checkEmail applies the email rules in order: presence, format, domain.
// It returns the first violated rule's message, or "" when all pass.
func (v *CredentialValidator) checkEmail(email string) string {
	if email == "" {
		return MsgEmailRequired
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return MsgEmailInvalid
	}

	if !strings.HasSuffix(email, v.allowedDomain) {
		return MsgEmailDomain(v.allowedDomain)
	}

	return ""
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
