// Command and library module kitnet implements an online, unsupervised
// anomaly-detection engine over fixed-length numeric feature vectors.
//
// The core packages are:
//
//	kernel      - elementwise math primitives and quantization
//	autoencoder - single-hidden-layer denoising autoencoder
//	fm          - incremental correlation accumulator and clustering
//	kitnet      - ensemble orchestrator and lifecycle state machine
//	export      - frozen parameter-only export representation
//	snapshot    - normalization-parameter persistence sink
//	ingest      - websocket streaming adaptor
//
// cmd/kitnetd is a CLI driver that replays a file of observations through
// an Engine or serves the websocket ingestion endpoint.
package kitnet
