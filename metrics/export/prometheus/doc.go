// Package prometheus renders goRedirect metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [goRedirect.Engine] and exposes an
// [net/http.Handler] that renders all counters and histograms. Counter names
// are prefixed goredirect_*_total; the single histogram is
// goredirect_resolve_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
//   - Mutate engine state.
package prometheus
