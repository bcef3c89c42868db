package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	catalogModel "github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
	chatModel "github.com/BssMsi/everglow-ai-storefront/internal/model/chat"
	themeModel "github.com/BssMsi/everglow-ai-storefront/internal/model/theme"
	"github.com/BssMsi/everglow-ai-storefront/pkg/utils"
)

// Handler implements the simulator's canned dialogue agent. It keyword
// matches the utterance against the seeded catalog and round-trips the
// dialogue state the way the real agent does.
type Handler struct {
	products catalogModel.Store
}

// New creates the chat handler.
func New(products catalogModel.Store) *Handler {
	return &Handler{products: products}
}

// RegisterRoutes registers the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text  string                   `json:"text"`
		State *chatModel.DialogueState `json:"state_dict"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	matches := h.matchProducts(text)
	reply := "Could you tell me a bit more about what your skin needs?"
	if len(matches) > 0 {
		reply = "Here are some options I found for you."
	}

	state := nextState(payload.State, text, reply, matches)

	response := map[string]any{
		"ai_message": reply,
		"state":      state,
	}
	if len(matches) > 0 {
		ids := make([]string, 0, len(matches))
		for _, p := range matches {
			ids = append(ids, p.ID)
		}
		response["product_ids"] = ids
	}
	if hint := themeHint(text); hint != "" {
		response["theme"] = hint
	}

	utils.RespondJSON(w, http.StatusOK, response)
}

// matchProducts returns seeded products whose name, category or tags share
// a token with the utterance.
func (h *Handler) matchProducts(text string) []catalogModel.Product {
	lowered := strings.ToLower(text)

	var matches []catalogModel.Product
	for _, p := range h.products.List() {
		if productMatches(p, lowered) {
			matches = append(matches, p)
		}
	}
	return matches
}

func productMatches(p catalogModel.Product, lowered string) bool {
	for _, tag := range p.Tags {
		if strings.Contains(lowered, strings.ToLower(tag)) {
			return true
		}
	}
	if strings.Contains(lowered, strings.ToLower(p.Category)) {
		return true
	}
	return strings.Contains(lowered, strings.ToLower(p.Name))
}

// themeHint occasionally nudges the storefront mood: an utterance naming a
// registered scheme becomes an explicit hint, everything else stays silent
// so the client falls back to random selection.
func themeHint(text string) string {
	lowered := strings.ToLower(text)
	for _, id := range themeModel.SchemeIDs() {
		if strings.Contains(lowered, id) {
			return id
		}
	}
	return ""
}

func nextState(prev *chatModel.DialogueState, userText, reply string, matches []catalogModel.Product) *chatModel.DialogueState {
	state := &chatModel.DialogueState{
		Entities: map[string]any{},
	}
	if prev != nil {
		state.History = prev.History
		for k, v := range prev.Entities {
			state.Entities[k] = v
		}
	}

	state.History = append(state.History, []string{"user", userText}, []string{"agent", reply})

	intent := "search"
	activeAgent := "conversational_search"
	state.Intent = &intent
	state.ActiveAgent = &activeAgent

	if len(matches) > 0 {
		categories := make([]string, 0, len(matches))
		for _, p := range matches {
			categories = append(categories, p.Category)
		}
		state.Entities["categories"] = categories
	} else {
		state.FollowupQuestions = []string{"What skin type are you shopping for?"}
	}

	return state
}
