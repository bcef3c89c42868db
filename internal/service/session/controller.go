package session

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
	"github.com/BssMsi/everglow-ai-storefront/internal/model/chat"
	"github.com/BssMsi/everglow-ai-storefront/internal/service/agent"
)

// Fixed transcript texts the assistant falls back to.
const (
	GreetingText = "Hello! How can I help you find the perfect vegan skincare?"
	ApologyText  = "Sorry, I couldn't connect to the assistant. Please try again later."
)

// TurnSender sends one utterance plus the round-trip state to the agent.
type TurnSender interface {
	SendTurn(ctx context.Context, text string, state *chat.DialogueState) (*agent.TurnResponse, error)
}

// ProductResolver resolves agent-supplied product identifiers into records.
type ProductResolver interface {
	Resolve(ctx context.Context, ids []string) ([]catalog.Product, error)
}

// ThemeApplier applies the agent's theme hint, drawing a random scheme when
// the hint is empty.
type ThemeApplier interface {
	ApplyHint(hint string)
}

// Controller orchestrates one conversational search session: it owns the
// append-only message log, drives text turns through the agent, publishes
// resolved products and triggers theme changes.
//
// Submissions serialize: the user message is appended at call time, then
// agent round trips run one at a time in call order, so agent replies land
// in submission order as well.
type Controller struct {
	agent   TurnSender
	catalog ProductResolver
	themes  ThemeApplier

	// turnMu serializes agent I/O and is the only path that replaces the
	// dialogue state.
	turnMu sync.Mutex
	state  *chat.DialogueState

	mu       sync.RWMutex
	messages []chat.Message
	products []catalog.Product
	pending  int

	onMessage  func(chat.Message)
	onProducts func([]catalog.Product)
	onTyping   func(bool)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithOnMessage registers a callback fired for every appended message.
func WithOnMessage(fn func(chat.Message)) Option {
	return func(c *Controller) { c.onMessage = fn }
}

// WithOnProducts registers a callback fired when a new product list is
// published.
func WithOnProducts(fn func([]catalog.Product)) Option {
	return func(c *Controller) { c.onProducts = fn }
}

// WithOnTyping registers a callback fired when the agent-is-composing flag
// flips.
func WithOnTyping(fn func(bool)) Option {
	return func(c *Controller) { c.onTyping = fn }
}

// NewController builds a session seeded with the assistant greeting.
func NewController(sender TurnSender, resolver ProductResolver, themes ThemeApplier, opts ...Option) *Controller {
	c := &Controller{
		agent:    sender,
		catalog:  resolver,
		themes:   themes,
		messages: make([]chat.Message, 0, 16),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.append(chat.NewAgentMessage(GreetingText))
	return c
}

// SubmitUtterance runs one text turn end to end. Input that trims to empty
// is silently ignored. The user message is appended before any network I/O;
// every failure past that point resolves to the fixed apology reply, so the
// session stays usable.
func (c *Controller) SubmitUtterance(ctx context.Context, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	c.append(chat.NewUserMessage(trimmed))
	c.setTyping(true)
	defer c.setTyping(false)

	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	turn, err := c.agent.SendTurn(ctx, trimmed, c.state)
	if err != nil {
		log.Printf("[session] turn failed: %v", err)
		c.append(chat.NewAgentMessage(ApologyText))
		return
	}

	c.append(chat.NewAgentMessage(turn.AIMessage))
	// Wholesale replacement; the state token is never merged or edited.
	c.state = turn.State

	if len(turn.ProductIDs) == 0 {
		return
	}

	products, err := c.catalog.Resolve(ctx, turn.ProductIDs)
	if err != nil {
		// Keep whatever list is already on display.
		log.Printf("[session] product resolution failed: %v", err)
		return
	}

	c.publishProducts(products)
	c.themes.ApplyHint(turn.Theme)
}

// AppendAgentNotice appends an agent-side notice to the transcript. The
// voice channel uses this for its fixed error messages.
func (c *Controller) AppendAgentNotice(content string) {
	c.append(chat.NewAgentMessage(content))
}

// Messages returns a copy of the transcript in append order.
func (c *Controller) Messages() []chat.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	copied := make([]chat.Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Products returns a copy of the most recently published product list.
func (c *Controller) Products() []catalog.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	copied := make([]catalog.Product, len(c.products))
	copy(copied, c.products)
	return copied
}

// Typing reports whether any submitted turn is still awaiting the agent.
func (c *Controller) Typing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pending > 0
}

// Reset discards the transcript, the product list and the dialogue state,
// then re-seeds the greeting.
func (c *Controller) Reset() {
	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	c.mu.Lock()
	c.messages = c.messages[:0]
	c.products = nil
	c.mu.Unlock()
	c.state = nil

	c.append(chat.NewAgentMessage(GreetingText))
}

func (c *Controller) append(msg chat.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()

	if c.onMessage != nil {
		c.onMessage(msg)
	}
}

func (c *Controller) publishProducts(products []catalog.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	if c.onProducts != nil {
		c.onProducts(products)
	}
}

func (c *Controller) setTyping(active bool) {
	c.mu.Lock()
	var flipped bool
	if active {
		c.pending++
		flipped = c.pending == 1
	} else {
		c.pending--
		flipped = c.pending == 0
	}
	c.mu.Unlock()

	if flipped && c.onTyping != nil {
		c.onTyping(active)
	}
}
