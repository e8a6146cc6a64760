// Package forms defines the form shapes the application accepts: login,
// registration, movie creation and the extended movie edit form. Each form
// is an explicit struct built from posted url.Values; Validate fills the
// Errors slice with user-facing field messages and reports overall validity.
package forms

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"
)

// FieldError attaches a user-facing message to a named form field.
type FieldError struct {
	Field   string
	Message string
}

const (
	msgRequired        = "This field is required."
	msgInvalidEmail    = "Invalid email address."
	msgPasswordLength  = "Your password must be between 4 and 20 characters long."
	msgPasswordNoMatch = "This password did not match the one in the password field."
	msgInvalidYear     = "Please enter a year in the format YYYY."
)

// earliestYear is the year of the earliest motion picture; anything older
// is rejected as input error rather than stored.
const earliestYear = 1878

// LoginForm carries the login credentials.
type LoginForm struct {
	Email    string
	Password string
	Errors   []FieldError
}

// ParseLoginForm builds a LoginForm from posted values.
func ParseLoginForm(v url.Values) *LoginForm {
	return &LoginForm{
		Email:    strings.TrimSpace(v.Get("email")),
		Password: v.Get("password"),
	}
}

// Validate checks the login fields and returns true when the form is valid.
func (f *LoginForm) Validate() bool {
	f.Errors = nil
	if f.Email == "" {
		f.addError("email", msgRequired)
	} else if !validEmail(f.Email) {
		f.addError("email", msgInvalidEmail)
	}
	if f.Password == "" {
		f.addError("password", msgRequired)
	}
	return len(f.Errors) == 0
}

func (f *LoginForm) addError(field, msg string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: msg})
}

// RegisterForm carries the registration fields including the confirmation.
type RegisterForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	Errors          []FieldError
}

// ParseRegisterForm builds a RegisterForm from posted values.
func ParseRegisterForm(v url.Values) *RegisterForm {
	return &RegisterForm{
		Email:           strings.TrimSpace(v.Get("email")),
		Password:        v.Get("password"),
		ConfirmPassword: v.Get("confirm_password"),
	}
}

// Validate enforces the registration contract: syntactically valid email,
// password length in [4,20], confirmation equal to the password.
func (f *RegisterForm) Validate() bool {
	f.Errors = nil
	if f.Email == "" {
		f.AddError("email", msgRequired)
	} else if !validEmail(f.Email) {
		f.AddError("email", msgInvalidEmail)
	}
	if f.Password == "" {
		f.AddError("password", msgRequired)
	} else if len(f.Password) < 4 || len(f.Password) > 20 {
		f.AddError("password", msgPasswordLength)
	}
	if f.ConfirmPassword == "" {
		f.AddError("confirm_password", msgRequired)
	} else if f.ConfirmPassword != f.Password {
		f.AddError("confirm_password", msgPasswordNoMatch)
	}
	return len(f.Errors) == 0
}

// AddError appends a field error. Exported so handlers can attach errors
// that only the store can detect, such as an already registered email.
func (f *RegisterForm) AddError(field, msg string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: msg})
}

// MovieForm carries the minimal fields needed to create a movie. YearRaw
// keeps the submitted text so an invalid value can be re-rendered as typed.
type MovieForm struct {
	Title    string
	Director string
	YearRaw  string
	Year     int
	Errors   []FieldError
}

// ParseMovieForm builds a MovieForm from posted values.
func ParseMovieForm(v url.Values) *MovieForm {
	return &MovieForm{
		Title:    strings.TrimSpace(v.Get("title")),
		Director: strings.TrimSpace(v.Get("director")),
		YearRaw:  strings.TrimSpace(v.Get("year")),
	}
}

// Validate checks the creation fields and returns true when valid. The year
// must parse as an integer and be 1878 or later.
func (f *MovieForm) Validate() bool {
	f.Errors = nil
	if f.Title == "" {
		f.addError("title", msgRequired)
	}
	if f.Director == "" {
		f.addError("director", msgRequired)
	}
	switch y, err := strconv.Atoi(f.YearRaw); {
	case f.YearRaw == "":
		f.addError("year", msgRequired)
	case err != nil, y < earliestYear:
		f.addError("year", msgInvalidYear)
	default:
		f.Year = y
	}
	return len(f.Errors) == 0
}

func (f *MovieForm) addError(field, msg string) {
	f.Errors = append(f.Errors, FieldError{Field: field, Message: msg})
}

// validEmail reports whether s is a bare, syntactically valid address.
// ParseAddress also accepts the "Name <addr>" form, which is not a usable
// login identifier, so the parsed address must equal the input.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
