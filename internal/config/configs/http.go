package configs

// HTTP defines configuration for the HTTP server. The default port
// matches the API base URL the board client assumes out of the box.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"3000"`
}
