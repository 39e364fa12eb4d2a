// Package snapshot defines the sink abstraction the ensemble orchestrator
// writes its normalization-parameter snapshot to after every AD-training
// step. A Sink is the only disk interaction on the engine's hot path, and
// is deliberately swappable: FileSink persists the blob to disk,
// MemorySink captures it in memory for tests, and NoopSink (the engine's
// default) discards it.
package snapshot
