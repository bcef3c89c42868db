package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Fixed transcript notices for voice failures.
const (
	ConnectionErrorText = "Voice service connection error. Please try again."
	MicrophoneErrorText = "Microphone unavailable. Please check recording permissions."
)

// ErrAlreadyActive is returned when StartListening is called while a
// capture session is connecting or streaming.
var ErrAlreadyActive = errors.New("voice capture already active")

// State is the voice channel lifecycle position.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateStreaming
	StateStopping
	StateClosed
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateStopping:
		return "stopping"
	case StateClosed:
		return "closed"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// NoticeSink receives the fixed error notices the voice channel appends to
// the shared transcript. The session controller implements it.
type NoticeSink interface {
	AppendAgentNotice(content string)
}

// Client drives the bidirectional voice channel: microphone chunks go up as
// binary frames in capture order, synthesized speech frames come back and
// are played as received. One capture session at a time; the device handle
// is released on stop, on error and on every teardown path. There is no
// automatic reconnect, the user restarts explicitly.
type Client struct {
	url     string
	dialer  *websocket.Dialer
	device  CaptureDevice
	player  Player
	notices NoticeSink

	mu          sync.Mutex
	state       State
	conn        *websocket.Conn
	cancel      context.CancelFunc
	deviceOpen  bool
	captureDone chan struct{}
	readDone    chan struct{}
}

// NewClient builds a voice channel client for the given websocket URL.
func NewClient(url string, device CaptureDevice, player Player, notices NoticeSink) *Client {
	return &Client{
		url:     url,
		dialer:  &websocket.Dialer{HandshakeTimeout: 30 * time.Second},
		device:  device,
		player:  player,
		notices: notices,
		state:   StateIdle,
	}
}

// State reports the current lifecycle position.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StartListening acquires the capture device, opens the stream and begins
// pumping audio. Valid from idle, closed and errored. A device that cannot
// be opened fails immediately with the state left at idle and a microphone
// notice appended to the transcript.
func (c *Client) StartListening(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateIdle, StateClosed, StateErrored:
	default:
		c.mu.Unlock()
		return ErrAlreadyActive
	}
	c.state = StateIdle

	// Permission check before any connection attempt.
	if err := c.device.Open(); err != nil {
		c.mu.Unlock()
		log.Printf("[voice] capture device unavailable: %v", err)
		c.notify(MicrophoneErrorText)
		return fmt.Errorf("open capture device: %w", err)
	}
	c.deviceOpen = true
	c.state = StateConnecting
	c.mu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.mu.Lock()
		c.releaseDeviceLocked()
		c.state = StateErrored
		c.mu.Unlock()
		log.Printf("[voice] dial failed: %v", err)
		c.notify(ConnectionErrorText)
		return fmt.Errorf("voice dial failed: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.state != StateConnecting {
		// Stopped while the dial was in flight.
		c.mu.Unlock()
		cancel()
		conn.Close()
		return nil
	}
	c.conn = conn
	c.cancel = cancel
	c.captureDone = make(chan struct{})
	c.readDone = make(chan struct{})
	captureDone, readDone := c.captureDone, c.readDone
	c.state = StateStreaming
	c.mu.Unlock()

	log.Printf("[voice] streaming to %s", c.url)

	go c.captureLoop(runCtx, conn, captureDone)
	go c.playbackLoop(conn, readDone)
	return nil
}

// StopListening terminates capture from any state; calling it twice, or
// without an active session, is not an error. The capture device is
// released first, in-flight outbound chunks drain, then the stream closes.
func (c *Client) StopListening() {
	c.mu.Lock()
	switch c.state {
	case StateIdle, StateClosed:
		c.mu.Unlock()
		return
	case StateErrored:
		c.state = StateClosed
		c.mu.Unlock()
		return
	}
	c.state = StateStopping
	conn := c.conn
	cancel := c.cancel
	captureDone := c.captureDone
	readDone := c.readDone
	c.releaseDeviceLocked()
	c.mu.Unlock()

	if captureDone != nil {
		<-captureDone
	}
	if cancel != nil {
		cancel()
	}
	if conn != nil {
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		conn.Close()
	}
	if readDone != nil {
		<-readDone
	}

	c.mu.Lock()
	c.conn = nil
	c.cancel = nil
	c.captureDone = nil
	c.readDone = nil
	c.state = StateClosed
	c.mu.Unlock()

	log.Printf("[voice] capture stopped")
}

// captureLoop pumps microphone chunks to the stream in capture order.
func (c *Client) captureLoop(ctx context.Context, conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		chunk, err := c.device.ReadChunk(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				log.Printf("[voice] capture source drained")
			case errors.Is(err, context.Canceled), errors.Is(err, ErrDeviceClosed):
			default:
				log.Printf("[voice] capture read failed: %v", err)
			}
			return
		}
		if len(chunk) == 0 {
			continue
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
			c.fail(fmt.Errorf("write audio chunk: %w", err))
			return
		}
	}
}

// playbackLoop treats every inbound binary frame as synthesized speech and
// plays it immediately. Each playback runs on its own goroutine; frames
// arriving faster than audio duration simply overlap.
func (c *Client) playbackLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if c.stoppingOrClosed() {
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				// Server close ends the turn without an error notice.
				c.remoteClosed()
				return
			}
			c.fail(fmt.Errorf("read voice frame: %w", err))
			return
		}
		if messageType != websocket.BinaryMessage || len(data) == 0 {
			continue
		}
		go c.player.Play(data)
	}
}

// fail handles a transport error: release the device, tear the connection
// down and append the fixed connection notice exactly once.
func (c *Client) fail(err error) {
	c.mu.Lock()
	if c.state != StateConnecting && c.state != StateStreaming {
		// Teardown already in progress; nothing to report.
		c.mu.Unlock()
		return
	}
	c.releaseDeviceLocked()
	conn := c.conn
	cancel := c.cancel
	c.conn = nil
	c.cancel = nil
	c.state = StateErrored
	c.mu.Unlock()

	log.Printf("[voice] transport error: %v", err)
	if cancel != nil {
		cancel()
	}
	if conn != nil {
		conn.Close()
	}
	c.notify(ConnectionErrorText)
}

// remoteClosed winds a session down after the server closed the stream.
func (c *Client) remoteClosed() {
	c.mu.Lock()
	if c.state != StateConnecting && c.state != StateStreaming {
		c.mu.Unlock()
		return
	}
	c.releaseDeviceLocked()
	conn := c.conn
	cancel := c.cancel
	c.conn = nil
	c.cancel = nil
	c.state = StateClosed
	c.mu.Unlock()

	log.Printf("[voice] stream closed by server")
	if cancel != nil {
		cancel()
	}
	if conn != nil {
		conn.Close()
	}
}

func (c *Client) stoppingOrClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateStopping || c.state == StateClosed
}

// releaseDeviceLocked closes the capture device exactly once per session.
// Callers hold c.mu.
func (c *Client) releaseDeviceLocked() {
	if !c.deviceOpen {
		return
	}
	if err := c.device.Close(); err != nil {
		log.Printf("[voice] device close failed: %v", err)
	}
	c.deviceOpen = false
}

func (c *Client) notify(text string) {
	if c.notices != nil {
		c.notices.AppendAgentNotice(text)
	}
}
