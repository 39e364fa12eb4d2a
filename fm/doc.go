// Package fm implements the incremental correlation accumulator and the
// one-shot hierarchical clustering that derives a feature partition from
// it.
//
// Accumulator.Update absorbs one observation at a time in O(n²), tracking
// running sums needed to approximate a running correlation distance
// matrix (CorrDist). Accumulator.Cluster runs single-linkage agglomerative
// clustering over that distance matrix exactly once, at the FM→AD
// transition, and returns a partition of feature indices into clusters no
// larger than the configured maximum.
//
// The running mean used to center each update is the *current-step* mean
// (c/N after incrementing c), not a true running mean à la Welford. This
// is a deliberate, accepted approximation: negative correlation distances
// it can produce are clamped to zero in CorrDist. Using an exact running
// mean would change D, and therefore the derived partition.
package fm
