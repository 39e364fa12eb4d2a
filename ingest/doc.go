// Package ingest adapts a kitnet.Engine to a websocket transport: each
// connection gets its own Engine instance, decodes one JSON observation
// frame at a time, and writes back the resulting score. One Engine per
// connection preserves the single-writer ordering guarantee the engine
// requires without sharing mutable state across connections.
package ingest
