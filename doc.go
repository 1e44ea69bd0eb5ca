// Package phantomkit designs silicone tissue-mimicking phantoms: given a
// target elastic modulus it returns a validated fabrication recipe, or an
// explicit gap report when no tested composition reaches the target.
//
// 🚀 What is phantomkit?
//
//	A small, gap-aware inverse-design toolkit built around:
//		• Sample store: measured (family, thinner %, modulus) triples, integrity-checked
//		• Monotonicity validation: non-monotonic families are excluded, never patched
//		• PCHIP interpolation: shape-preserving, no overshoot between samples
//		• Coverage resolution: which families reach a target, or the nearest bounds
//		• Recipe selection: deterministic choice among covering families
//
// ✨ Why phantomkit?
//
//   - Never extrapolates: outside the tested ranges you get a gap, not a guess
//   - Deterministic: identical data and target give identical answers
//   - Reloadable: snapshots swap atomically under concurrent queries
//
// Packages:
//
//	sample/    measured samples, label parsing, the validated Store
//	monotone/  strict monotonicity checks per family
//	pchip/     monotone cubic Hermite interpolation and its inverse
//	curve/     FamilyCurve: one validated, invertible family
//	coverage/  covering families and nearest-sample gap bounds
//	design/    Designer (recipes, gap reports) and the reloadable Service
//	dataset/   CSV, XLSX, SQL (sqlite, postgres) and S3 dataset I/O
//	config/    PHANTOM_* environment configuration
//	server/    HTTP API with Prometheus metrics
//
// Binaries: cmd/phantomd (HTTP server) and cmd/phantom (CLI).
//
//	go install github.com/katalvlaran/phantomkit/cmd/...@latest
package phantomkit
