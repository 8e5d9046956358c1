package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User represents a registered user of the quiz application. Besides the
// account fields it carries two owned relations: the answers the user has
// chosen and the PDF reports generated for them. The relation slices are
// populated only by explicit relation-loading store calls and are nil
// otherwise.
//
// The password is treated as an opaque credential blob; hashing and
// verification happen outside this core.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Opaque credential blob, never exposed in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ChosenAnswers is the user's answer selection set (one answer per
	// question). Loaded by UserStore.GetWithSelections.
	ChosenAnswers []*Answer `json:"chosen_answers,omitempty"`

	// Documents is the set of PDF reports owned by the user.
	// Loaded by UserStore.GetWithDocuments.
	Documents []*PDFDocument `json:"documents,omitempty"`
}

// UserUpdate carries a partial update of a user's account fields.
// Nil fields are left untouched by Merge.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// NewUser creates a new User with the given username, email and password.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewUser(username, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// Merge applies a partial update to the user. Only non-nil fields of the
// update overwrite existing values; everything else is preserved. The
// UpdatedAt timestamp is refreshed. Returns an error if the merged user
// fails validation, in which case the receiver is left unchanged.
func (u *User) Merge(update UserUpdate) error {
	merged := *u
	if update.Username != nil {
		merged.Username = *update.Username
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Password != nil {
		merged.Password = *update.Password
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := merged.Validate(); err != nil {
		return err
	}

	*u = merged
	return nil
}

// HasChosenAnswer reports whether the given answer is already in the user's
// selection set. Requires ChosenAnswers to be loaded.
func (u *User) HasChosenAnswer(answerID uuid.UUID) bool {
	for _, answer := range u.ChosenAnswers {
		if answer.ID == answerID {
			return true
		}
	}
	return false
}

// AnswerForQuestion returns the user's selected answer for the given
// question, or nil if the question is unanswered. Requires ChosenAnswers
// to be loaded with their questions.
func (u *User) AnswerForQuestion(questionID uuid.UUID) *Answer {
	for _, answer := range u.ChosenAnswers {
		if answer.QuestionID == questionID {
			return answer
		}
	}
	return nil
}

// Document returns the document with the given ID from the user's owned
// document set, or nil if it is not reachable through the relation. This is
// the only sanctioned ownership test: a document that exists but belongs to
// another user is indistinguishable from one that does not exist.
// Requires Documents to be loaded.
func (u *User) Document(pdfID uuid.UUID) *PDFDocument {
	for _, doc := range u.Documents {
		if doc.ID == pdfID {
			return doc
		}
	}
	return nil
}

// validEmailFormat performs basic validation of email format: a single @
// with a non-empty local part and a dotted domain. Deliberately minimal;
// deliverability is not this layer's concern.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Contains(email[at+1:], "@") {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
