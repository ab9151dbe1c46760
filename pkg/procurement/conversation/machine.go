package conversation

import (
	"context"
	"fmt"
	"strings"

	"procure-ai-be/pkg/procurement/extract"
	"procure-ai-be/pkg/procurement/question"
	"procure-ai-be/pkg/procurement/supplier"
	"procure-ai-be/pkg/procurement/valuation"
)

const supplierBatchSize = 3

// Reply is what the assistant sends back for one turn. Vendors carries the
// structured supplier cards shown alongside the text, when any.
type Reply struct {
	Text    string
	Vendors []supplier.Match
}

// EffectType names a side effect the caller must perform after persisting
// the turn. The machine itself never does I/O beyond its collaborators.
type EffectType string

const (
	EffectPlanCompleted EffectType = "plan_completed"
	EffectSessionReset  EffectType = "session_reset"
)

// Effect is a declarative side-effect request emitted by Advance.
type Effect struct {
	Type EffectType
	Plan *PlanSummary
}

// PlanSummary is the finished procurement plan, emitted once a supplier is
// confirmed. It feeds the summary email and the completion event.
type PlanSummary struct {
	ProductType      string            `json:"product_type"`
	Quantity         int               `json:"quantity"`
	Location         string            `json:"location"`
	Attributes       map[string]string `json:"attributes"`
	Timeline         string            `json:"timeline"`
	Budget           float64           `json:"budget"`
	ProcurementValue float64           `json:"procurement_value"`
	Method           string            `json:"method"`
	RequiresWOC      bool              `json:"requires_woc"`
	WOCAnswers       map[string]string `json:"woc_answers,omitempty"`
	Supplier         supplier.Match    `json:"supplier"`
}

// Machine advances a conversation one user message at a time. It is a pure
// reducer over State: collaborators are injected so turns are testable with
// fakes, and the caller owns all persistence.
type Machine struct {
	extractor extract.TextExtractor
	questions question.Source
}

func NewMachine(extractor extract.TextExtractor, questions question.Source) *Machine {
	return &Machine{extractor: extractor, questions: questions}
}

// Advance applies one user message to the conversation. The catalog is the
// vendor pool to match against once requirements are complete. A panic in
// any stage handler resets the conversation instead of corrupting it.
func (m *Machine) Advance(ctx context.Context, st State, input string, catalog []supplier.Vendor) (next State, reply Reply, effects []Effect) {
	defer func() {
		if r := recover(); r != nil {
			next = NewState()
			reply = Reply{Text: "Sorry, something went wrong on my side. Let's start over - what do you need to procure?"}
			effects = []Effect{{Type: EffectSessionReset}}
		}
	}()

	input = strings.TrimSpace(input)
	switch st.Stage {
	case StageInitial:
		return m.handleInitial(ctx, st, input)
	case StageClarifying:
		return m.handleClarifying(st, input)
	case StageConfirmation:
		return m.handleConfirmation(st, input)
	case StageTimeline:
		return m.handleTimeline(st, input)
	case StageAskingBudget:
		return m.handleBudget(st, input, catalog)
	case StageGatheringWOC:
		return m.handleGatheringWOC(st, input, catalog)
	case StageSupplierSelection:
		return m.handleSupplierSelection(st, input)
	default:
		return NewState(), Reply{Text: "Let's start over - what do you need to procure?"}, []Effect{{Type: EffectSessionReset}}
	}
}

func (m *Machine) handleInitial(ctx context.Context, st State, input string) (State, Reply, []Effect) {
	if canned := smallTalk(input); canned != "" {
		return st, Reply{Text: canned}, nil
	}

	ents := m.extractor.Extract(input)
	if ents.ProductType == "" {
		return st, Reply{Text: "I couldn't quite catch what you need to procure. Could you describe it again? For example: \"I need 50 office chairs for Mumbai\"."}, nil
	}

	st.ProductType = ents.ProductType
	st.Quantity = ents.Quantity
	st.Location = ents.Location
	st.Questions = m.questions.Generate(ctx, ents.ProductType, ents.Quantity)
	st.CurrentQuestionIndex = 0
	st.Attributes = map[string]string{}
	st.Stage = StageClarifying

	text := fmt.Sprintf("Great! I understand you need %d %s%s for %s. Let me ask a few questions to find the best match.\n\n%s",
		st.Quantity, st.ProductType, pluralSuffix(st.Quantity, st.ProductType), st.Location, st.Questions[0].Question)
	return st, Reply{Text: text}, nil
}

func (m *Machine) handleClarifying(st State, input string) (State, Reply, []Effect) {
	q := st.Questions[st.CurrentQuestionIndex]
	st.Attributes = cloneMap(st.Attributes)
	st.Attributes[q.Key] = input
	st.CurrentQuestionIndex++

	if st.CurrentQuestionIndex < len(st.Questions) {
		return st, Reply{Text: st.Questions[st.CurrentQuestionIndex].Question}, nil
	}

	st.Stage = StageConfirmation
	return st, Reply{Text: summaryText(st) + "\n\nIs this correct? (Yes to proceed, No to modify)"}, nil
}

func (m *Machine) handleConfirmation(st State, input string) (State, Reply, []Effect) {
	lower := strings.ToLower(input)
	switch {
	case containsAny(lower, "yes", "confirm", "correct"):
		st.Stage = StageTimeline
		return st, Reply{Text: "Excellent! Now, what's your preferred delivery timeline? (e.g., within 7 days, within 2 weeks, within 1 month)"}, nil
	case containsAny(lower, "no", "change", "modify"):
		st.Attributes = map[string]string{}
		st.CurrentQuestionIndex = 0
		st.Stage = StageClarifying
		return st, Reply{Text: "No problem! Let's go through the details again.\n\n" + st.Questions[0].Question}, nil
	default:
		return st, Reply{Text: "Please answer Yes to proceed or No to modify the details."}, nil
	}
}

func (m *Machine) handleTimeline(st State, input string) (State, Reply, []Effect) {
	st.Timeline = input
	st.TimelineDays = extract.ParseTimelineDays(input)
	st.Stage = StageAskingBudget
	return st, Reply{Text: "Got it. What is your total budget for this procurement? (e.g., 200000)"}, nil
}

func (m *Machine) handleBudget(st State, input string, catalog []supplier.Vendor) (State, Reply, []Effect) {
	amount, ok := extract.ParseAmount(input)
	if !ok || amount <= 0 {
		return st, Reply{Text: "I couldn't read a budget amount. Please enter a number, for example: 200000."}, nil
	}

	st.Budget = amount
	st.ProcurementValue = valuation.EstimateValue(st.ProductType, st.Quantity, st.Budget)
	method := valuation.SelectMethod(st.ProcurementValue)
	st.Method = method.Name
	st.RequiresWOC = method.RequiresWOC

	intro := fmt.Sprintf("Based on an estimated procurement value of %s, the recommended procurement method is %s. %s",
		formatAmount(st.ProcurementValue), method.Name, method.Description)

	if method.RequiresWOC {
		st.Stage = StageGatheringWOC
		st.WOCIndex = 0
		st.WOCAnswers = map[string]string{}
		return st, Reply{Text: intro + "\n\n" + wocQuestions[0].Question}, nil
	}
	return m.runSupplierSearch(st, intro, catalog)
}

func (m *Machine) handleGatheringWOC(st State, input string, catalog []supplier.Vendor) (State, Reply, []Effect) {
	st.WOCAnswers = cloneMap(st.WOCAnswers)
	st.WOCAnswers[wocQuestions[st.WOCIndex].Key] = input
	st.WOCIndex++

	if st.WOCIndex < len(wocQuestions) {
		return st, Reply{Text: wocQuestions[st.WOCIndex].Question}, nil
	}
	return m.runSupplierSearch(st, "Thank you, the waiver justification is recorded.", catalog)
}

func (m *Machine) runSupplierSearch(st State, intro string, catalog []supplier.Vendor) (State, Reply, []Effect) {
	req := supplier.Requirements{
		ProductType:  st.ProductType,
		Quantity:     st.Quantity,
		Budget:       st.Budget,
		TimelineDays: st.TimelineDays,
		Attributes:   attributeValues(st),
	}
	st.Matches = supplier.FindSuppliers(req, catalog)
	if len(st.Matches) == 0 {
		fresh := NewState()
		return fresh, Reply{Text: intro + "\n\nUnfortunately I couldn't find any suppliers matching your requirements and budget. Let's try again - describe what you need, perhaps with a different budget."}, []Effect{{Type: EffectSessionReset}}
	}

	st.Stage = StageSupplierSelection
	st.BatchStart = 0
	batch := currentBatch(st)
	return st, Reply{Text: intro + "\n\nHere are the best matching suppliers:\n\n" + batchText(batch) + selectionMenu(st), Vendors: batch}, nil
}

func (m *Machine) handleSupplierSelection(st State, input string) (State, Reply, []Effect) {
	lower := strings.ToLower(input)
	batch := currentBatch(st)

	switch {
	case lower == "4" || lower == "more":
		if st.BatchStart+supplierBatchSize >= len(st.Matches) {
			return st, Reply{Text: "There are no more supplier options. " + selectionMenu(st), Vendors: batch}, nil
		}
		st.BatchStart += supplierBatchSize
		batch = currentBatch(st)
		return st, Reply{Text: "Here are more options:\n\n" + batchText(batch) + selectionMenu(st), Vendors: batch}, nil

	case lower == "5" || lower == "restart" || lower == "start over" || lower == "no":
		return NewState(), Reply{Text: "Alright, let's start fresh. What do you need to procure?"}, []Effect{{Type: EffectSessionReset}}

	case lower == "1" || lower == "2" || lower == "3":
		idx := int(lower[0] - '1')
		if idx >= len(batch) {
			return st, Reply{Text: "That option isn't available. " + selectionMenu(st), Vendors: batch}, nil
		}
		chosen := batch[idx]
		plan := &PlanSummary{
			ProductType:      st.ProductType,
			Quantity:         st.Quantity,
			Location:         st.Location,
			Attributes:       st.Attributes,
			Timeline:         st.Timeline,
			Budget:           st.Budget,
			ProcurementValue: st.ProcurementValue,
			Method:           st.Method,
			RequiresWOC:      st.RequiresWOC,
			WOCAnswers:       st.WOCAnswers,
			Supplier:         chosen,
		}
		fresh := NewState()
		fresh.ConfirmedSeller = &chosen
		text := fmt.Sprintf("Your procurement plan is complete. %s will supply %d %s%s at %s per unit. Contact: %s\n\nI've sent the plan summary to your email. Need anything else?",
			chosen.Vendor.Name, plan.Quantity, plan.ProductType, pluralSuffix(plan.Quantity, plan.ProductType), formatAmount(chosen.Vendor.Price), chosen.Vendor.Contact)
		return fresh, Reply{Text: text, Vendors: []supplier.Match{chosen}}, []Effect{{Type: EffectPlanCompleted, Plan: plan}}

	default:
		return st, Reply{Text: "Please pick a supplier by number. " + selectionMenu(st), Vendors: batch}, nil
	}
}

func currentBatch(st State) []supplier.Match {
	end := st.BatchStart + supplierBatchSize
	if end > len(st.Matches) {
		end = len(st.Matches)
	}
	return st.Matches[st.BatchStart:end]
}

func batchText(batch []supplier.Match) string {
	var b strings.Builder
	for i, m := range batch {
		fmt.Fprintf(&b, "%d. %s - %s per unit, delivery in %d days, rating %.1f",
			i+1, m.Vendor.Name, formatAmount(m.Vendor.Price), m.Vendor.DeliveryDays, m.Vendor.Rating)
		if m.Vendor.Certified {
			b.WriteString(", certified")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func selectionMenu(st State) string {
	menu := "\nReply 1-3 to select a supplier"
	if st.BatchStart+supplierBatchSize < len(st.Matches) {
		menu += ", 4 for more options"
	}
	return menu + ", or 5 to start over."
}

func summaryText(st State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I have so far:\n\n📦 Product: %d %s%s\n📍 Location: %s",
		st.Quantity, st.ProductType, pluralSuffix(st.Quantity, st.ProductType), st.Location)
	for _, q := range st.Questions {
		if v, ok := st.Attributes[q.Key]; ok {
			fmt.Fprintf(&b, "\n• %s: %s", q.Key, v)
		}
	}
	return b.String()
}

func attributeValues(st State) []string {
	out := make([]string, 0, len(st.Attributes))
	for _, q := range st.Questions {
		if v, ok := st.Attributes[q.Key]; ok {
			out = append(out, v)
		}
	}
	return out
}

func pluralSuffix(n int, word string) string {
	if n > 1 && !strings.HasSuffix(word, "s") {
		return "s"
	}
	return ""
}

func formatAmount(v float64) string {
	return fmt.Sprintf("₹%.0f", v)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
