// Package integrations provides the shared HTTP client used to talk to
// Maven-layout repositories.
//
// # Overview
//
// Repository-specific logic such as addressing and POM parsing lives in
// [maven]; this package owns only the transport concerns:
//
//   - A single [http.Client] with a 30 second timeout ([NewHTTPClient])
//   - Default request headers such as the User-Agent
//   - Strict status handling: anything but 200 OK is a failure
//   - UTF-8 decoding of response bodies ([DecodeUTF8])
//
// # Client Pattern
//
//	client := integrations.NewClient(map[string]string{
//	    "User-Agent": "Maven-Dependency-Visualizer/1.0",
//	})
//	text, err := client.GetText(ctx, url)
//
// # Errors
//
// Every failure is returned as an [errors.RetrievalError]. The error chain
// additionally carries one of the sentinels below so callers can branch with
// errors.Is:
//
//   - [ErrNotFound]: the repository answered 404
//   - [ErrNetwork]: DNS, connection, timeout or 5xx failures
//   - [ErrDecoding]: the body was not valid UTF-8
//
// Requests are never retried and responses are never cached; each call
// performs exactly one round trip.
//
// # Instrumentation
//
// Requests, responses and transport errors are reported to the hooks
// registered with [observability.SetHTTPHooks].
//
// [maven]: github.com/matzehuels/mavenviz/pkg/maven
// [errors.RetrievalError]: github.com/matzehuels/mavenviz/pkg/errors.RetrievalError
// [observability.SetHTTPHooks]: github.com/matzehuels/mavenviz/pkg/observability.SetHTTPHooks
package integrations
