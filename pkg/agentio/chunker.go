package agentio

import "fmt"

// DefaultChunkSize is the maximum number of bytes written to a sink in one
// call.
const DefaultChunkSize = 25600

// WriteChunked writes data to the sink in chunks of at most chunkSize bytes,
// in order, and closes the sink after the final chunk. Concatenating the
// chunks in emission order reconstructs data exactly; a payload smaller than
// chunkSize goes out as a single chunk.
func WriteChunked(sink Sink, data []byte, chunkSize int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	for start := 0; start < len(data); start += chunkSize {
		end := min(start+chunkSize, len(data))
		if _, err := sink.Write(data[start:end]); err != nil {
			return fmt.Errorf("failed to write chunk at offset %d: %w", start, err)
		}
	}
	return sink.Close()
}
