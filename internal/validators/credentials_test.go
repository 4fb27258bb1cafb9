package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-feed-board/models"
)

func validSignup() SignupInput {
	return SignupInput{
		Email:    "a@zod.com",
		Username: "abcde",
		Password: "abc1234567",
		Bio:      "hello",
	}
}

func TestValidateSignup_Valid(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	assert.True(t, v.ValidateSignup(validSignup()).Ok())
}

func TestValidateSignup_FieldRules(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		field   string
		message string
	}{
		{
			name:    "empty email",
			mutate:  func(in *SignupInput) { in.Email = "" },
			field:   models.FieldEmail,
			message: MsgEmailRequired,
		},
		{
			name:    "malformed email",
			mutate:  func(in *SignupInput) { in.Email = "not-an-email" },
			field:   models.FieldEmail,
			message: MsgEmailInvalid,
		},
		{
			name:    "wrong domain",
			mutate:  func(in *SignupInput) { in.Email = "a@example.com" },
			field:   models.FieldEmail,
			message: MsgEmailDomain("@zod.com"),
		},
		{
			name:    "empty username",
			mutate:  func(in *SignupInput) { in.Username = "" },
			field:   models.FieldUsername,
			message: MsgUsernameRequired,
		},
		{
			name:    "short username",
			mutate:  func(in *SignupInput) { in.Username = "abcd" },
			field:   models.FieldUsername,
			message: MsgUsernameTooShort,
		},
		{
			name:    "empty password",
			mutate:  func(in *SignupInput) { in.Password = "" },
			field:   models.FieldPassword,
			message: MsgPasswordRequired,
		},
		{
			name:    "short password",
			mutate:  func(in *SignupInput) { in.Password = "abc123" },
			field:   models.FieldPassword,
			message: MsgPasswordTooShort,
		},
		{
			name:    "password without digit",
			mutate:  func(in *SignupInput) { in.Password = "abcdefghij" },
			field:   models.FieldPassword,
			message: MsgPasswordNeedsDigit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignup()
			tt.mutate(&in)

			errs := v.ValidateSignup(in)

			assert.Equal(t, FieldErrors{tt.field: tt.message}, errs)
		})
	}
}

// Presence beats format beats refinement: an empty field never reports a
// later rule's message.
func TestValidateSignup_FirstRuleWinsPerField(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	in := validSignup()
	in.Email = "" // empty is also not well-formed and not on the domain

	errs := v.ValidateSignup(in)
	assert.Equal(t, MsgEmailRequired, errs[models.FieldEmail])
}

func TestValidateSignup_AllFieldsMissing(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	errs := v.ValidateSignup(SignupInput{})

	assert.Len(t, errs, 3)
	assert.Equal(t, MsgEmailRequired, errs[models.FieldEmail])
	assert.Equal(t, MsgUsernameRequired, errs[models.FieldUsername])
	assert.Equal(t, MsgPasswordRequired, errs[models.FieldPassword])
}

func TestValidateSignup_BioOptional(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	in := validSignup()
	in.Bio = ""

	assert.True(t, v.ValidateSignup(in).Ok())
}

func TestValidateSignup_DomainSuffixExactMatch(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	// well-formed address on a domain that merely contains the suffix text
	in := validSignup()
	in.Email = "a@zod.com.evil.org"

	errs := v.ValidateSignup(in)
	assert.Equal(t, MsgEmailDomain("@zod.com"), errs[models.FieldEmail])
}

func TestValidateLogin_Valid(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	errs := v.ValidateLogin(LoginInput{Email: "a@zod.com", Password: "x"})
	assert.True(t, errs.Ok())
}

// Complexity rules are a signup gate only: a short, digit-free password is
// acceptable at login as long as it is present.
func TestValidateLogin_NoComplexityCheck(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	errs := v.ValidateLogin(LoginInput{Email: "a@zod.com", Password: "short"})
	assert.True(t, errs.Ok())
}

func TestValidateLogin_EmptyPassword(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	errs := v.ValidateLogin(LoginInput{Email: "a@zod.com"})
	assert.Equal(t, FieldErrors{models.FieldPassword: MsgPasswordRequired}, errs)
}

func TestValidateLogin_BadEmail(t *testing.T) {
	v := NewCredentialValidator("@zod.com")

	errs := v.ValidateLogin(LoginInput{Email: "nope", Password: "x"})
	assert.Equal(t, MsgEmailInvalid, errs[models.FieldEmail])
}

func TestValidateTweet(t *testing.T) {
	v := NewFeedValidator()

	assert.True(t, v.ValidateTweet("hello").Ok())
	assert.Equal(t, FieldErrors{models.FieldTweet: MsgTweetRequired}, v.ValidateTweet(""))
	assert.Equal(t, FieldErrors{models.FieldTweet: MsgTweetTooLong}, v.ValidateTweet(strings.Repeat("a", MaxPostLength+1)))
	assert.True(t, v.ValidateTweet(strings.Repeat("a", MaxPostLength)).Ok())
}

func TestValidateResponse(t *testing.T) {
	v := NewFeedValidator()

	assert.True(t, v.ValidateResponse("hi").Ok())
	assert.Equal(t, FieldErrors{models.FieldText: MsgResponseRequired}, v.ValidateResponse(""))
	assert.Equal(t, FieldErrors{models.FieldText: MsgResponseTooLong}, v.ValidateResponse(strings.Repeat("b", MaxPostLength+1)))
}
