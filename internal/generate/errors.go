package generate

// remoteError signals a failed hosted-model call: network error, non-2xx
// status, or a response missing the expected completion. It never escapes
// Generate; the pipeline absorbs it into the fallback path.
type remoteError struct{ msg string }

func (e remoteError) Error() string { return "remote generation failed: " + e.msg }

// IsRemoteFailure reports whether err came from the hosted-model call.
func IsRemoteFailure(err error) bool {
	_, ok := err.(remoteError)
	return ok
}
