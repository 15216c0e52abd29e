package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/minhng-ct/commerce-bot/internal/catalog"
	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/pkg/util"
)

// topicMatchLimit caps how many products a chat reply lists.
const topicMatchLimit = 3

// ChatUsecase routes a normalized chat message to a reply. It is the only
// stateful part of the engine besides the cart ledger: each session keeps
// a transient Idle/AwaitingTopic flag, reset on restart.
type ChatUsecase interface {
	HandleMessage(ctx context.Context, msg models.InboundMessage) (*models.Reply, error)
}

type sessionState int

const (
	stateIdle sessionState = iota
	stateAwaitingTopic
)

type chatSession struct {
	mu    sync.Mutex
	state sessionState
}

type conversationRouter struct {
	catalog     *catalog.Index
	catalogRe   *regexp.Regexp
	recommendRe *regexp.Regexp
	sessions    sync.Map // sessionID -> *chatSession
}

// NewConversationRouter compiles the two intent vocabularies. It refuses
// overlapping vocabularies: a text matching both would make the state
// machine non-deterministic.
func NewConversationRouter(conf *config.Config, ix *catalog.Index) (ChatUsecase, error) {
	catalogRe, err := compileIntent(conf.Chat.CatalogIntents)
	if err != nil {
		return nil, fmt.Errorf("catalog intent: %w", err)
	}
	recommendRe, err := compileIntent(conf.Chat.RecommendIntents)
	if err != nil {
		return nil, fmt.Errorf("recommend intent: %w", err)
	}

	for _, w := range conf.Chat.CatalogIntents {
		if recommendRe.MatchString(w) {
			return nil, fmt.Errorf("intent vocabularies overlap on %q", w)
		}
	}
	for _, w := range conf.Chat.RecommendIntents {
		if catalogRe.MatchString(w) {
			return nil, fmt.Errorf("intent vocabularies overlap on %q", w)
		}
	}

	return &conversationRouter{
		catalog:     ix,
		catalogRe:   catalogRe,
		recommendRe: recommendRe,
	}, nil
}

func compileIntent(words []string) (*regexp.Regexp, error) {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			parts = append(parts, regexp.QuoteMeta(w))
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty vocabulary")
	}
	return regexp.Compile(`(?i)(` + strings.Join(parts, "|") + `)`)
}

func (r *conversationRouter) HandleMessage(ctx context.Context, msg models.InboundMessage) (*models.Reply, error) {
	if msg.SessionID == "" || strings.TrimSpace(msg.Text) == "" {
		return nil, models.NewValidationError("missing sessionId or text")
	}

	entry, _ := r.sessions.LoadOrStore(msg.SessionID, &chatSession{})
	session := entry.(*chatSession)

	// Read state, compute reply and write the new state as one unit, so
	// two quick messages from the same session serialize instead of
	// racing each other.
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.state == stateAwaitingTopic {
		session.state = stateIdle
		return r.replyToTopic(ctx, msg.Text), nil
	}

	switch {
	case r.catalogRe.MatchString(msg.Text):
		return r.replyCategories(), nil
	case r.recommendRe.MatchString(msg.Text):
		session.state = stateAwaitingTopic
		return &models.Reply{
			Text: "Tell me what you'd like to improve (e.g. skin care, energy, home).",
		}, nil
	default:
		return &models.Reply{
			Text: "Hi! I'm your shopping assistant. I can show you the catalog or recommend a product — just say \"catalog\" or \"recommend\".",
		}, nil
	}
}

func (r *conversationRouter) replyCategories() *models.Reply {
	categories := r.catalog.Categories()
	if len(categories) == 0 {
		return &models.Reply{Text: "The catalog is empty right now, please check back later."}
	}

	var b strings.Builder
	b.WriteString("Categories:")
	for i, c := range categories {
		fmt.Fprintf(&b, "\n%d) %s", i+1, c)
	}
	return &models.Reply{Text: b.String()}
}

func (r *conversationRouter) replyToTopic(ctx context.Context, topic string) *models.Reply {
	matches := r.catalog.Match(topic, topicMatchLimit)
	if len(matches) == 0 {
		log.Infow(ctx, "no catalog match for topic", "topic", topic)
		return &models.Reply{
			Text: "I couldn't find a match. Want to leave your contact so we can follow up with options?",
		}
	}

	return &models.Reply{
		Text:     "Here is what I found:",
		Products: util.ConvertList(matches, summarize),
	}
}

func summarize(p models.Product) models.ProductSummary {
	return models.ProductSummary{
		Name:      p.Name,
		ShortDesc: p.ShortDesc,
		Price:     p.Price,
		Currency:  p.Currency,
		BuyLink:   p.BuyLink,
		ImageURL:  p.ImageURL,
	}
}
