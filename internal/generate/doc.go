// Package generate turns source text into study material. It is structured
// into small files by concern:
//
//   - pipeline.go: Generator type and the remote-or-fallback Generate flow.
//   - prompts.go: fixed instruction templates per output kind.
//   - remote.go: chat-completions client for the hosted model.
//   - cleaner.go: validation/normalization of structured remote output.
//   - fallback.go: deterministic, network-free local generators.
//   - errors.go: the remote failure type and IsRemoteFailure.
//
// The pipeline never surfaces remote errors: any network, HTTP, or response
// shape problem degrades to the local generators, so Generate always returns
// usable text for non-empty input.
package generate
