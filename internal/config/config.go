package config

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	AccountServiceURL string `mapstructure:"account_service_url"`
	PaymentServiceURL string `mapstructure:"payment_service_url"`
	// TimeoutSeconds of 0 disables the client-side timeout; a hung
	// request then blocks its operation until the process is killed.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			AccountServiceURL: "http://localhost:8080",
			PaymentServiceURL: "http://localhost:8081",
			TimeoutSeconds:    0,
		},
		Defaults: DefaultsConfig{Currency: "EUR"},
	}
}
