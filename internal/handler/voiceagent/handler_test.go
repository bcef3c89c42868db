package voiceagent

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func TestVoiceAgentEchoesBinaryFrames(t *testing.T) {
	r := chi.NewRouter()
	New().RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/voice-agent"
	dialer := &websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	defer conn.Close()

	chunk := []byte{0xAA, 0xBB, 0xCC}
	if err := conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
		t.Fatalf("write err: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	messageType, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	if messageType != websocket.BinaryMessage {
		t.Fatalf("expected binary frame, got type %d", messageType)
	}
	if !bytes.Equal(data, chunk) {
		t.Fatalf("unexpected frame: %v", data)
	}
}
