package voice

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Player consumes synthesized speech blobs as they arrive. Playback is
// best-effort: the client hands every inbound frame to Play on its own
// goroutine, so overlapping calls must be safe.
type Player interface {
	Play(data []byte)
}

// FilePlayer writes every received blob to a directory, the development
// stand-in for an audio output device.
type FilePlayer struct {
	dir string
	seq atomic.Int64
}

// NewFilePlayer writes playback blobs into dir.
func NewFilePlayer(dir string) *FilePlayer {
	return &FilePlayer{dir: dir}
}

// Play persists one synthesized speech blob.
func (p *FilePlayer) Play(data []byte) {
	if len(data) == 0 {
		return
	}

	n := p.seq.Add(1)
	name := fmt.Sprintf("voice-reply-%d-%d.audio", time.Now().Unix(), n)
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[voice] failed to write playback blob: %v", err)
		return
	}
	log.Printf("[voice] playback blob written to %s (%d bytes)", path, len(data))
}
