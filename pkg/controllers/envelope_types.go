package controllers

import (
	"unicode/utf8"

	"github.com/alex-b96/budgeting-app/pkg/models"
	"golang.org/x/text/unicode/norm"
)

// EnvelopeEditable contains all fields of an envelope a client can set.
type EnvelopeEditable struct {
	AnvelopeName   *string `json:"anvelope_name" binding:"required,max=100" example:"Groceries"` // Name of the envelope
	AnvelopeBudget *int64  `json:"anvelope_budget" binding:"required,gte=0" example:"300"`       // Starting balance
	BudgetID       *int64  `json:"budget_id" binding:"required,gte=0" example:"1"`               // ID of the budget the envelope belongs to
}

// model transforms the API representation into the model representation.
//
// Names are stored in NFC unless the composed form has more characters than
// the validated input, which happens for a few composition exclusions.
func (e EnvelopeEditable) model() models.Envelope {
	name := norm.NFC.String(*e.AnvelopeName)
	if utf8.RuneCountInString(name) > utf8.RuneCountInString(*e.AnvelopeName) {
		name = *e.AnvelopeName
	}

	return models.Envelope{
		EnvelopeCreate: models.EnvelopeCreate{
			AnvelopeName:   name,
			AnvelopeBudget: *e.AnvelopeBudget,
			BudgetID:       *e.BudgetID,
		},
	}
}
