package resend

// Config holds Resend provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// sender returns the default From value, or "" when no sender email is configured.
func (c Config) sender() string {
	if c.SenderEmail == "" {
		return ""
	}
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return c.SenderName + " <" + c.SenderEmail + ">"
}
