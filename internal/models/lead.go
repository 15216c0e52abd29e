package models

import "time"

// LeadInput is the caller-supplied part of a lead. Name and phone are
// mandatory, everything else defaults to empty.
type LeadInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Lead is a captured prospective-customer contact record. CreatedAt is
// assigned by the store at capture time; leads are immutable afterwards.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadReceipt is returned to the caller after a successful capture.
// Backend identifies the store that persisted the record and never
// affects behavior.
type LeadReceipt struct {
	ID      string `json:"id"`
	Backend string `json:"backend"`
}
