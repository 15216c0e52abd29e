package models

// InboundMessage is the normalized message every channel adapter hands to
// the engine: an opaque session identifier, the originating channel name
// and the raw text. Sessions are scoped to one channel; the engine never
// links them across channels.
type InboundMessage struct {
	SessionID string `json:"session_id" validate:"required"`
	Channel   string `json:"channel"`
	Text      string `json:"text" validate:"required"`
}

// Reply is the normalized answer handed back to the channel adapter.
type Reply struct {
	Text     string           `json:"text"`
	Products []ProductSummary `json:"products,omitempty"`
}

// ChatEvent is the envelope chat platforms publish on the message stream.
type ChatEvent struct {
	Pattern string        `json:"pattern"`
	Data    ChatEventData `json:"data"`
}

type ChatEventData struct {
	SessionID string `json:"session_id"`
	Channel   string `json:"channel"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
}

// OutboundReply is the reply event published back to the chat stream.
type OutboundReply struct {
	SessionID string           `json:"session_id"`
	Channel   string           `json:"channel"`
	SenderID  string           `json:"sender_id"`
	Text      string           `json:"text"`
	Products  []ProductSummary `json:"products,omitempty"`
}

// CheckoutItem is one requested line of a checkout. Name and Price are
// caller-supplied fallbacks used when ProductID does not resolve against
// the catalog.
type CheckoutItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

// CheckoutLineItem is the normalized line-item data handed to the
// payment-session collaborator. Amounts are in minor units (cents).
type CheckoutLineItem struct {
	DisplayName string `json:"display_name"`
	UnitAmount  int64  `json:"unit_amount"`
	Currency    string `json:"currency"`
	Quantity    int    `json:"quantity"`
}
