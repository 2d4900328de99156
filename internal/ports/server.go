package ports

// Server is a long-running front end for the detector
type Server interface {
	// Start begins serving in the background
	Start() error

	// Stop shuts the server down gracefully
	Stop() error
}
