package internaldefs

import (
	goRedirect "github.com/MrEthical07/goRedirect"
)

// CounterDef binds a core metric ID to its exposition name and help text.
type CounterDef struct {
	ID   goRedirect.MetricID
	Name string
	Help string
}

// HistogramDef binds a core histogram ID to its exposition name and help text.
type HistogramDef struct {
	ID   goRedirect.MetricID
	Name string
	Help string
}

// CounterDefs is the shared counter table used by every exporter.
var CounterDefs = []CounterDef{
	{ID: goRedirect.MetricResolveAttempt, Name: "goredirect_resolve_attempt_total", Help: "Role polling attempts."},
	{ID: goRedirect.MetricResolveSessionHit, Name: "goredirect_resolve_session_hit_total", Help: "Resolutions satisfied by the session store."},
	{ID: goRedirect.MetricResolvePrincipalHit, Name: "goredirect_resolve_principal_hit_total", Help: "Resolutions satisfied by the principal fallback."},
	{ID: goRedirect.MetricResolveUnresolved, Name: "goredirect_resolve_unresolved_total", Help: "Resolutions that exhausted the attempt budget."},
	{ID: goRedirect.MetricResolveCancelled, Name: "goredirect_resolve_cancelled_total", Help: "Resolutions abandoned by context teardown."},
	{ID: goRedirect.MetricResolveStoreError, Name: "goredirect_resolve_store_error_total", Help: "Session read failures during polling."},
	{ID: goRedirect.MetricRoleUnknown, Name: "goredirect_role_unknown_total", Help: "Resolved role values outside the registered set."},
	{ID: goRedirect.MetricRedirectIssued, Name: "goredirect_redirect_issued_total", Help: "Successful redirect navigations."},
	{ID: goRedirect.MetricRedirectFailed, Name: "goredirect_redirect_failed_total", Help: "Redirect navigations rejected by the router."},
}

// HistogramDefs is the shared histogram table used by every exporter.
var HistogramDefs = []HistogramDef{
	{ID: goRedirect.MetricResolveLatency, Name: "goredirect_resolve_latency_seconds", Help: "End-to-end role resolution latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, matching the core
// histogram layout.
var HistogramBounds = []string{
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"1",
	"2",
	"4",
	"+Inf",
}

// HistogramBoundSuffix mirrors HistogramBounds with characters legal in
// instrument names.
var HistogramBoundSuffix = []string{
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"1",
	"2",
	"4",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// expected by Prometheus histograms.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
