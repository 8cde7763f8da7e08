package agentio

import "fmt"

// Sink is the destination of a chunked response stream. Writes are issued
// strictly sequentially; Close is called exactly once after the final chunk.
type Sink interface {
	Write(p []byte) (int, error)
	Close() error
}

// BufferSink collects chunks in memory. It backs runtimes that expect the
// whole response as a return value rather than a stream.
type BufferSink struct {
	chunks [][]byte
	closed bool
}

func (s *BufferSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, fmt.Errorf("write to closed sink")
	}
	chunk := make([]byte, len(p))
	copy(chunk, p)
	s.chunks = append(s.chunks, chunk)
	return len(p), nil
}

func (s *BufferSink) Close() error {
	if s.closed {
		return fmt.Errorf("sink already closed")
	}
	s.closed = true
	return nil
}

// Chunks returns the individual writes in emission order.
func (s *BufferSink) Chunks() [][]byte {
	return s.chunks
}

// Bytes returns the concatenation of all chunks in emission order.
func (s *BufferSink) Bytes() []byte {
	var out []byte
	for _, chunk := range s.chunks {
		out = append(out, chunk...)
	}
	return out
}

func (s *BufferSink) Closed() bool {
	return s.closed
}
