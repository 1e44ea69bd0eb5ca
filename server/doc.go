// Package server exposes the designer over HTTP.
//
// GET endpoints are public and read-only. POST /v1/reload requires the
// admin bearer token; an empty token disables it.
//
//	GET  /healthz                        liveness + loaded sample count
//	GET  /v1/design?modulus=M[&family=F] recipe or gap report
//	GET  /v1/families                    per-family validated ranges
//	GET  /v1/families/{family}/curve     interpolated curve points (?points=N)
//	POST /v1/reload                      rebuild the snapshot from the dataset
//	GET  /metrics                        Prometheus metrics
package server
