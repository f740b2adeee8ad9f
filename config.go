package mailform

// Config holds mailer defaults.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	DefaultTo       string `env:"MAILFORM_DEFAULT_TO"`
	DefaultFrom     string `env:"MAILFORM_DEFAULT_FROM"`
	FallbackSubject string `env:"MAILFORM_FALLBACK_SUBJECT" envDefault:"New message"`
}
