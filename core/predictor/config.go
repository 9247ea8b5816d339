package predictor

// Config holds configuration for the spending predictor.
type Config struct {
	// APIKey is the Gemini API key. An empty key disables predictions.
	APIKey string `mapstructure:"api_key" default:""`
	// Model is the Gemini model used for predictions.
	Model string `mapstructure:"model" default:"gemini-2.5-flash"`
	// TimeoutSeconds bounds a single prediction call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
