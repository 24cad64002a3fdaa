package database

// Config holds configuration for the MongoDB connection.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" default:"mongodb://localhost/studybundles"`
	// Database overrides the database named in the URI.
	Database string `mapstructure:"database" default:""`
	// Collection is the collection holding the bundles.
	Collection string `mapstructure:"collection" default:"bundles"`
	// TimeoutSeconds bounds connection setup and server selection.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
