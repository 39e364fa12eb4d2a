// Command kitnetd drives the anomaly-detection engine from the command
// line: replay a file of observation vectors, or serve a websocket
// ingestion endpoint.
package main

func main() {
	Execute()
}
