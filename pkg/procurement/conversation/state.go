package conversation

import (
	"procure-ai-be/pkg/procurement/question"
	"procure-ai-be/pkg/procurement/supplier"
)

// Stage is the current step of the procurement conversation. Exactly one
// stage is active at a time; every transition is triggered by one user
// message.
type Stage string

const (
	StageInitial           Stage = "initial"
	StageClarifying        Stage = "clarifying"
	StageConfirmation      Stage = "confirmation"
	StageTimeline          Stage = "timeline"
	StageAskingBudget      Stage = "asking_budget"
	StageGatheringWOC      Stage = "gathering_woc"
	StageSupplierSelection Stage = "supplier_selection"
)

// State is the full conversation snapshot. It is plain data: validation
// rules are re-attached by question key on load, never serialized with it.
type State struct {
	Stage                Stage               `json:"stage"`
	ProductType          string              `json:"product_type"`
	Quantity             int                 `json:"quantity"`
	Location             string              `json:"location"`
	Questions            []question.Question `json:"questions"`
	CurrentQuestionIndex int                 `json:"current_question_index"`
	Attributes           map[string]string   `json:"attributes"`
	Timeline             string              `json:"timeline"`
	TimelineDays         int                 `json:"timeline_days"`
	Budget               float64             `json:"budget"`
	ProcurementValue     float64             `json:"procurement_value"`
	Method               string              `json:"method"`
	RequiresWOC          bool                `json:"requires_woc"`
	WOCAnswers           map[string]string   `json:"woc_answers"`
	WOCIndex             int                 `json:"woc_index"`
	Matches              []supplier.Match    `json:"suppliers,omitempty"`
	BatchStart           int                 `json:"batch_start"`
	ConfirmedSeller      *supplier.Match     `json:"confirmed_seller,omitempty"`
}

// NewState returns the initial defaults for a fresh conversation.
func NewState() State {
	return State{
		Stage:      StageInitial,
		Quantity:   1,
		Location:   "Unknown",
		Attributes: map[string]string{},
		WOCAnswers: map[string]string{},
	}
}

// wocQuestions is the fixed waiver-of-competition justification script.
var wocQuestions = []question.Question{
	{Key: "woc_reason", Question: "This procurement requires a Waiver of Competition justification. First, what is the main reason for waiving competitive bidding? (e.g., urgency, single source availability, compatibility with existing systems)"},
	{Key: "woc_circumstances", Question: "Are there any special circumstances supporting this waiver? (e.g., emergency situation, specialized requirements)"},
	{Key: "woc_value", Question: "Finally, how will you ensure value for money without open competition? (e.g., price benchmarking, past contract rates)"},
}

// WOCQuestions exposes the justification script for display and tests.
func WOCQuestions() []question.Question {
	out := make([]question.Question, len(wocQuestions))
	copy(out, wocQuestions)
	return out
}
