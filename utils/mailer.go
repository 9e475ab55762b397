// File: utils/mailer.go
package utils

// Mailer delivers outbound account emails. Production wiring plugs in a real
// provider; the default logs the message so local flows stay observable.
type Mailer interface {
	SendVerificationEmail(email, displayName, token string) error
}

// LogMailer writes outbound emails to the application log instead of
// sending them.
type LogMailer struct{}

func (LogMailer) SendVerificationEmail(email, displayName, token string) error {
	GetLogger().Sugar().Infof(
		"Sending verification email to %s (%s): use token %s to verify your account",
		email, displayName, token,
	)
	return nil
}
