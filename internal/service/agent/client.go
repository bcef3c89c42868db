package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BssMsi/everglow-ai-storefront/internal/model/chat"
)

// TurnRequest is one user utterance plus the dialogue state returned by the
// previous turn, sent back verbatim so the agent keeps its memory.
type TurnRequest struct {
	Text  string              `json:"text"`
	State *chat.DialogueState `json:"state_dict"`
}

// TurnResponse is the agent's structured reply for a single turn.
type TurnResponse struct {
	AIMessage  string              `json:"ai_message"`
	State      *chat.DialogueState `json:"state"`
	ProductIDs []string            `json:"product_ids,omitempty"`
	Theme      string              `json:"theme,omitempty"`
}

// Client talks to the remote dialogue agent's chat endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a chat client for the given agent base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendTurn posts one utterance and the round-trip state to the agent. Any
// non-2xx status or malformed body is reported as an error; the caller is
// responsible for user-visible fallback.
func (c *Client) SendTurn(ctx context.Context, text string, state *chat.DialogueState) (*TurnResponse, error) {
	payload, err := json.Marshal(TurnRequest{Text: text, State: state})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("chat request failed: status %d", resp.StatusCode)
	}

	var turn TurnResponse
	if err := json.NewDecoder(resp.Body).Decode(&turn); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}

	return &turn, nil
}
