package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ErrDeviceClosed is returned by ReadChunk once the device has been closed.
var ErrDeviceClosed = errors.New("capture device closed")

// CaptureDevice abstracts the microphone. Open acquires the exclusive
// hardware handle and fails when recording permission is missing; ReadChunk
// blocks until the next fixed-duration audio chunk is available and returns
// io.EOF when the source has nothing more to produce; Close releases the
// handle.
type CaptureDevice interface {
	Open() error
	ReadChunk(ctx context.Context) ([]byte, error)
	Close() error
}

// FileDevice plays back a raw PCM (or WAV) file as if it were a live
// microphone, emitting one chunk per interval. Useful for development
// against the simulator and for tests.
type FileDevice struct {
	path      string
	chunkSize int
	interval  time.Duration

	mu     sync.Mutex
	data   []byte
	offset int
	open   bool
}

// NewFileDevice builds a device that emits interval-sized chunks of 16-bit
// mono PCM at the given sample rate.
func NewFileDevice(path string, sampleRate int, interval time.Duration) *FileDevice {
	chunkSize := int(float64(sampleRate*2) * interval.Seconds())
	if chunkSize < 2 {
		chunkSize = 2
	}
	return &FileDevice{
		path:      path,
		chunkSize: chunkSize,
		interval:  interval,
	}
}

// Open loads the audio source. A missing or unreadable file stands in for a
// denied microphone permission.
func (d *FileDevice) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return errors.New("capture device already open")
	}
	if d.path == "" {
		return errors.New("no capture source configured")
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("open capture source: %w", err)
	}

	// Skip the canonical 44-byte RIFF header so only samples go out.
	if len(data) > 44 && string(data[:4]) == "RIFF" {
		data = data[44:]
	}

	d.data = data
	d.offset = 0
	d.open = true
	return nil
}

// ReadChunk waits one capture interval and returns the next chunk.
func (d *FileDevice) ReadChunk(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(d.interval):
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		return nil, ErrDeviceClosed
	}
	if d.offset >= len(d.data) {
		return nil, io.EOF
	}

	end := d.offset + d.chunkSize
	if end > len(d.data) {
		end = len(d.data)
	}
	chunk := make([]byte, end-d.offset)
	copy(chunk, d.data[d.offset:end])
	d.offset = end
	return chunk, nil
}

// Close releases the source. Closing twice is harmless.
func (d *FileDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	d.data = nil
	return nil
}
