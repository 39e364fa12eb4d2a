// Package kitnet implements the ensemble orchestrator: a three-phase
// lifecycle (FM-train, AD-train, execute) over a single observation
// stream, routing feature sub-vectors to per-cluster autoencoders and
// aggregating their reconstruction errors through a single output
// autoencoder. It is the single entry point a streaming caller drives one
// observation at a time.
package kitnet
