package engine

// notFoundError signals a missing input file for 404 mapping.
type notFoundError struct{ path string }

func (e notFoundError) Error() string { return "file not found: " + e.path }

// ErrNotFound constructs a notFoundError.
func ErrNotFound(path string) error { return notFoundError{path: path} }

// IsNotFound reports whether err indicates a missing input file.
func IsNotFound(err error) bool {
	_, ok := err.(notFoundError)
	return ok
}

// initializationError signals a permanent engine load failure so the HTTP
// layer can return 503 Service Unavailable instead of 500.
type initializationError struct{ cause string }

func (e initializationError) Error() string { return "speech engine failed to load: " + e.cause }

// ErrInitialization constructs an initializationError.
func ErrInitialization(cause string) error { return initializationError{cause: cause} }

// IsInitialization reports whether err indicates the engine failed to load.
func IsInitialization(err error) bool {
	_, ok := err.(initializationError)
	return ok
}

// tooBusyError signals queue timeout/overflow for 429 mapping.
type tooBusyError struct{}

func (tooBusyError) Error() string { return "too busy: transcription queue full" }

// ErrTooBusy constructs a tooBusyError.
func ErrTooBusy() error { return tooBusyError{} }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	_, ok := err.(tooBusyError)
	return ok
}
