package configs

// API configures the board client. BaseURL points at the backend's API
// root and is injected into the client at construction; nothing reads
// it from a package global.
type API struct {
	// BaseURL is the backend API root, without a trailing slash.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000/api"`
}
