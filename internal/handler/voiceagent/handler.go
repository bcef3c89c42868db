package voiceagent

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Handler is the simulator's voice agent endpoint: binary audio frames in,
// binary "synthesized speech" frames out. The real backend transcribes,
// answers and synthesizes; the simulator echoes the captured audio back so
// the client's playback path can be exercised offline.
type Handler struct {
	upgrader websocket.Upgrader
}

// New creates the voice websocket handler.
func New() *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the voice agent websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/voice-agent", h.handleVoice)
}

func (h *Handler) handleVoice(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[voice-agent] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[voice-agent] connection from %s", r.RemoteAddr)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[voice-agent] read error: %v", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage || len(data) == 0 {
			continue
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			log.Printf("[voice-agent] write error: %v", err)
			return
		}
	}
}
