package mailgun

// Mailgun API base URLs.
const (
	DefaultBaseURL = "https://api.mailgun.net/v3"
	EUBaseURL      = "https://api.eu.mailgun.net/v3"
)

// Config holds Mailgun provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string `env:"MAILGUN_API_KEY"`
	Domain  string `env:"MAILGUN_DOMAIN"`
	BaseURL string `env:"MAILGUN_BASE_URL" envDefault:"https://api.mailgun.net/v3"`
}
