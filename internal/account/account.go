// Package account stubs the profile forms. Nothing is stored and nothing
// leaves the process; the forms only validate input and produce the
// confirmation text shown to the shopper.
package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/chased/internal/schedule"
)

var (
	// ErrMissingCredentials is returned when a login form has an empty field.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrMissingName is returned when the signup form has no name.
	ErrMissingName = errors.New("name is required")
	// ErrPasswordMismatch is returned when signup passwords differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Tab selects which profile form is shown.
type Tab int

const (
	TabLogin Tab = iota
	TabSignup
)

// Login validates the login form and returns the confirmation message.
func Login(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}
	return fmt.Sprintf("Login successful for %s!", email), nil
}

// Signup validates the signup form and returns the confirmation message.
func Signup(name, email, password, confirm string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrMissingName
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return "", ErrMissingCredentials
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return fmt.Sprintf("Account created successfully for %s!", name), nil
}

// ContactDelay is how long the contact form shows "Sending..." before
// confirming.
const ContactDelay = time.Second

// ContactThanks is shown once the contact form "sends".
const ContactThanks = "Thank you for your message. CHASED support will contact you shortly."

// ContactForm models the help-desk form's submit button.
type ContactForm struct {
	sched   schedule.Scheduler
	sending bool
	stop    func()
}

// NewContactForm returns an idle form whose delay runs on sched.
func NewContactForm(sched schedule.Scheduler) *ContactForm {
	return &ContactForm{sched: sched}
}

// Sending reports whether a submission is in flight; the button is disabled
// while it is.
func (f *ContactForm) Sending() bool {
	return f.sending
}

// ButtonLabel is the submit button caption.
func (f *ContactForm) ButtonLabel() string {
	if f.sending {
		return "Sending..."
	}
	return "Send Message"
}

// Submit starts a submission; done receives the thank-you text after
// ContactDelay. A second submit while sending is ignored.
func (f *ContactForm) Submit(done func(message string)) bool {
	if f.sending {
		return false
	}
	f.sending = true
	f.stop = f.sched.After(ContactDelay, func() {
		f.sending = false
		f.stop = nil
		done(ContactThanks)
	})
	return true
}

// Cancel abandons an in-flight submission.
func (f *ContactForm) Cancel() {
	if f.stop != nil {
		f.stop()
		f.stop = nil
	}
	f.sending = false
}
