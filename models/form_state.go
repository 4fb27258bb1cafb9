package models

// Form field names used as keys in FormState maps. Handlers, validators,
// and services all refer to fields by these constants.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldBio      = "bio"
	FieldTweet    = "tweet"
	FieldText     = "text"
)

// FormState is the transient result of one form submission. It exists for a
// single render cycle: the handler builds it, the client displays it, and it
// is never persisted.
//
// Invariant: password values are never echoed back in Values after a failed
// submission.
type FormState struct {
	// Success reports whether the submission reached its terminal success
	// state.
	Success bool `json:"success"`

	// Message is a human-readable outcome summary. For system errors it is
	// a generic retry message; internal detail is logged server-side only.
	Message string `json:"message"`

	// Errors maps a field name to the first violated rule's message for
	// that field. Empty on success.
	Errors map[string]string `json:"errors,omitempty"`

	// Values echoes the submitted input so the client can re-render the
	// form without losing what the user typed. Password fields are blanked.
	Values map[string]string `json:"values,omitempty"`
}

// NewFormState returns a FormState pre-populated with the echoed input
// values. Password fields must already be blanked by the caller.
func NewFormState(values map[string]string) FormState {
	return FormState{Values: values}
}

// WithFieldError returns a copy of the state with a single field error set.
func (f FormState) WithFieldError(field, message string) FormState {
	out := f
	out.Errors = map[string]string{field: message}
	return out
}

// LikeState is the result of a like-toggle action. Liked and LikeCount carry
// the server's resulting truth so the client can reconcile its speculative
// guess against concurrent toggles from other sessions.
type LikeState struct {
	Success   bool   `json:"success"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}
