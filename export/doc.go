// Package export exposes a frozen, parameter-only view of a trained
// ensemble suitable for a downstream tensor-graph runtime: the ensemble
// and output weight/bias triples, the feature partition, and the input
// dimension. Normalization ranges are not part of this structure; they
// travel through the snapshot side-channel instead (spec §4.5).
package export
