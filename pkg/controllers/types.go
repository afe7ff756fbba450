package controllers

// URIBudgetID is the budget ID in the request path.
type URIBudgetID struct {
	BudgetID int64 `uri:"budget_id"` // The ID of the budget
}

// URIEnvelopeID is the envelope ID in the request path.
type URIEnvelopeID struct {
	EnvelopeID int64 `uri:"envelope_id" binding:"gte=0"` // The ID of the envelope
}

// URIEnvelopeAmount is the target envelope and the amount for balance changes.
type URIEnvelopeAmount struct {
	EnvelopeID int64 `uri:"envelope_id" binding:"gte=0"` // The ID of the envelope
	Amount     int64 `uri:"amount" binding:"gte=0"`      // The amount to add or spend
}

type MessageResponse struct {
	Message string `json:"message" example:"Budget 1 and all its envelopes deleted successfully"`
}
