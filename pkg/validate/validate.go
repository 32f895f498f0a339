// Package validate holds the client-side validation rules for account and
// task fields. Every validator is pure: it maps a candidate record to a
// field-name → localized-message map, where an empty map means valid. Inputs
// are never mutated; callers pre-trim where a rule implies it.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"tableflip.dev/gorev/pkg/msg"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	namePattern     = regexp.MustCompile(`^[a-zA-ZğüşıöçĞÜŞİÖÇ\s]+$`)
	titlePattern    = regexp.MustCompile(`^[a-zA-ZğüşıöçĞÜŞİÖÇ0-9\s\-_.,!?()]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[0-9\s\-()]+$`)
)

// passwordSymbols is the accepted special-character set for passwords.
const passwordSymbols = "@$!%*?&._-"

// Length limits, mirrored from the remote contract.
const (
	UsernameMin = 3
	UsernameMax = 50
	EmailMax    = 100
	PasswordMin = 8
	PasswordMax = 100
	NameMax     = 50
	PhoneMin    = 10
	PhoneMax    = 20
	TitleMin    = 3
	TitleMax    = 200
	SearchMax   = 100
	PageSizeMin = 1
	PageSizeMax = 100
)

// Errors maps field names to localized error messages.
type Errors map[string]string

// OK reports whether no field failed.
func (e Errors) OK() bool { return len(e) == 0 }

// First returns an arbitrary-but-stable single message for surfaces that can
// only show one error at a time.
func (e Errors) First() string {
	for _, field := range []string{"id", "username", "email", "password", "confirmPassword",
		"firstName", "lastName", "phoneNumber", "title", "dueDate", "page", "pageSize", "searchTerm"} {
		if m, ok := e[field]; ok {
			return m
		}
	}
	for _, m := range e {
		return m
	}
	return ""
}

// Validator evaluates the rule table with messages in one language.
type Validator struct {
	loc *msg.Localizer
}

// New builds a Validator speaking the given language.
func New(loc *msg.Localizer) *Validator {
	return &Validator{loc: loc}
}

// Registration is the candidate record for account creation.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	PhoneNumber     string
}

// Credentials is the candidate record for login.
type Credentials struct {
	Username string
	Password string
}

// RegisterUser validates a registration record.
func (v *Validator) RegisterUser(in Registration) Errors {
	errs := Errors{}

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		errs["username"] = v.loc.T(msg.UsernameRequired)
	case utf8.RuneCountInString(username) < UsernameMin:
		errs["username"] = v.loc.T(msg.UsernameTooShort)
	case utf8.RuneCountInString(username) > UsernameMax:
		errs["username"] = v.loc.T(msg.UsernameTooLong)
	case !usernamePattern.MatchString(username):
		errs["username"] = v.loc.T(msg.UsernameInvalidFormat)
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = v.loc.T(msg.EmailRequired)
	case utf8.RuneCountInString(email) > EmailMax:
		errs["email"] = v.loc.T(msg.EmailTooLong)
	case !emailPattern.MatchString(email):
		errs["email"] = v.loc.T(msg.EmailInvalidFormat)
	}

	if m := v.password(in.Password); m != "" {
		errs["password"] = m
	}

	if strings.TrimSpace(in.ConfirmPassword) == "" {
		errs["confirmPassword"] = v.loc.T(msg.ConfirmPasswordRequired)
	} else if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = v.loc.T(msg.PasswordsDontMatch)
	}

	if m := v.personName(in.FirstName, msg.FirstNameTooLong, msg.FirstNameInvalidFormat); m != "" {
		errs["firstName"] = m
	}
	if m := v.personName(in.LastName, msg.LastNameTooLong, msg.LastNameInvalidFormat); m != "" {
		errs["lastName"] = m
	}

	if m := v.phone(in.PhoneNumber); m != "" {
		errs["phoneNumber"] = m
	}

	return errs
}

// LoginUser validates login credentials.
func (v *Validator) LoginUser(in Credentials) Errors {
	errs := Errors{}

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		errs["username"] = v.loc.T(msg.UsernameRequired)
	case utf8.RuneCountInString(username) > UsernameMax:
		errs["username"] = v.loc.T(msg.UsernameTooLong)
	}

	if m := v.password(in.Password); m != "" {
		errs["password"] = m
	}

	return errs
}

func (v *Validator) password(password string) string {
	switch {
	case strings.TrimSpace(password) == "":
		return v.loc.T(msg.PasswordRequired)
	case utf8.RuneCountInString(password) < PasswordMin:
		return v.loc.T(msg.PasswordTooShort)
	case utf8.RuneCountInString(password) > PasswordMax:
		return v.loc.T(msg.PasswordTooLong)
	case !passwordShapeOK(password):
		return v.loc.T(msg.PasswordInvalidFormat)
	}
	return ""
}

// passwordShapeOK checks the character-class requirements without regexp
// lookaheads, which RE2 does not support.
func passwordShapeOK(password string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

func (v *Validator) personName(name, tooLongKey, formatKey string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if utf8.RuneCountInString(name) > NameMax {
		return v.loc.T(tooLongKey)
	}
	if !namePattern.MatchString(name) {
		return v.loc.T(formatKey)
	}
	return ""
}

func (v *Validator) phone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if utf8.RuneCountInString(raw) > PhoneMax {
		return v.loc.T(msg.PhoneTooLong)
	}
	if !phonePattern.MatchString(raw) {
		return v.loc.T(msg.PhoneInvalidFormat)
	}
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < PhoneMin {
		return v.loc.T(msg.PhoneTooShort)
	}
	return ""
}
