// Package observability carries the logging and metrics seams of the
// unifi-facts client.
//
// The controller client takes a Logger and a MetricsRecorder through its
// configuration and reports everything it does through them; this package
// holds those two interfaces, their no-op defaults, and a zerolog-backed
// Logger adapter. Callers that want their own stack implement the
// interfaces and pass them in:
//
//	client, err := controller.NewWithConfig(&controller.ClientConfig{
//		BaseURL:  baseURL,
//		Username: username,
//		Password: password,
//		Logger:   myLogger,  // implements observability.Logger
//		Metrics:  myMetrics, // implements observability.MetricsRecorder
//	})
//
// # What gets reported
//
// The client logs query dispatch and session lifecycle at Debug, rejected
// logins at Warn, and transport failures at Error. The recorder sees one
// RecordHTTPRequest per exchange with a cardinality-safe path label, a
// RecordRateLimit for time spent waiting on the client-side cap, and a
// RecordError per failed operation, labeled with the client's error
// taxonomy.
//
// # Defaults
//
// Without a logger or metrics recorder the client falls back to no-op
// implementations, so unconfigured observability costs nothing. The CLI
// wires NewZerologLogger against stderr; see examples/observability for
// wiring both seams by hand.
package observability
