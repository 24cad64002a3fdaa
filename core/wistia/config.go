package wistia

// Config holds configuration for the Wistia API client.
type Config struct {
	// BaseURL is the root of the Data API.
	BaseURL string `mapstructure:"base_url" default:"https://api.wistia.com/v1"`
	// APIPassword is the account API password used for basic auth.
	APIPassword string `mapstructure:"api_password" default:""`
	// TimeoutSeconds bounds every request, including connection setup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
