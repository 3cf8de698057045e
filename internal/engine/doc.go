// Package engine contains the ring rotation core. It never imports app, writers,
// cli, or input; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// for the stable wire type (JSON v1).
package engine
