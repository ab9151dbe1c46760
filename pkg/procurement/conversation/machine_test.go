package conversation

import (
	"context"
	"strings"
	"testing"

	"procure-ai-be/pkg/procurement/extract"
	"procure-ai-be/pkg/procurement/question"
	"procure-ai-be/pkg/procurement/supplier"
)

var chairCatalog = []supplier.Vendor{
	{Name: "ChairCo", Category: "furniture", Items: []string{"office chairs", "stools"}, Price: 12000, Location: "Mumbai", DeliveryDays: 5, Rating: 4.5, Certified: true, Contact: "sales@chairco.in"},
	{Name: "SeatWorks", Category: "furniture", Items: []string{"office chairs", "desks"}, Price: 15000, Location: "Pune", DeliveryDays: 10, Rating: 4.0, Certified: false, Contact: "hello@seatworks.in"},
	{Name: "BudgetSeats", Category: "furniture", Items: []string{"office chairs"}, Price: 8000, Location: "Delhi", DeliveryDays: 20, Rating: 3.2, Certified: false, Contact: "orders@budgetseats.in"},
	{Name: "ErgoLux", Category: "furniture", Items: []string{"office chairs"}, Price: 18000, Location: "Mumbai", DeliveryDays: 6, Rating: 4.8, Certified: true, Contact: "contact@ergolux.in"},
}

func newTestMachine() *Machine {
	return NewMachine(extract.NewRegexExtractor(), question.StaticSource{})
}

// drive feeds a sequence of messages and returns the final state and reply.
func drive(t *testing.T, m *Machine, st State, inputs ...string) (State, Reply, []Effect) {
	t.Helper()
	var reply Reply
	var effects []Effect
	for _, in := range inputs {
		st, reply, effects = m.Advance(context.Background(), st, in, chairCatalog)
	}
	return st, reply, effects
}

func TestInitialRequestMovesToClarifying(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(), "I need 50 office chairs for Mumbai")

	if st.Stage != StageClarifying {
		t.Errorf("stage = %q, want %q", st.Stage, StageClarifying)
	}
	if st.Quantity != 50 || st.ProductType != "office chairs" || st.Location != "Mumbai" {
		t.Errorf("entities = %d %q %q, want 50 office chairs Mumbai", st.Quantity, st.ProductType, st.Location)
	}
	if len(st.Questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(st.Questions))
	}
	if !strings.Contains(reply.Text, st.Questions[0].Question) {
		t.Errorf("reply should contain first question, got %q", reply.Text)
	}
}

func TestInitialSmallTalkDoesNotAdvance(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(), "hello there")

	if st.Stage != StageInitial {
		t.Errorf("stage = %q, want %q", st.Stage, StageInitial)
	}
	if !strings.Contains(reply.Text, "procurement assistant") {
		t.Errorf("expected canned greeting, got %q", reply.Text)
	}
}

func TestInitialUnparseableReprompts(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(), "for within in")

	if st.Stage != StageInitial {
		t.Errorf("stage = %q, want %q", st.Stage, StageInitial)
	}
	if !strings.Contains(reply.Text, "describe it again") {
		t.Errorf("expected reprompt, got %q", reply.Text)
	}
}

func TestClarifyingCollectsAnswersInOrder(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"ergonomic with lumbar support",
		"premium",
		"adjustable armrests",
		"ISO certified",
		"delivery to 3rd floor",
	)

	if st.Stage != StageConfirmation {
		t.Fatalf("stage = %q, want %q", st.Stage, StageConfirmation)
	}
	if got := st.Attributes["specifications"]; got != "ergonomic with lumbar support" {
		t.Errorf("specifications = %q", got)
	}
	if got := st.Attributes["quality"]; got != "premium" {
		t.Errorf("quality = %q", got)
	}
	if !strings.Contains(reply.Text, "Is this correct?") {
		t.Errorf("expected confirmation prompt, got %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "50 office chairs") {
		t.Errorf("summary should restate the request, got %q", reply.Text)
	}
}

func TestConfirmationNoClearsAnswersAndRestartsQuestions(t *testing.T) {
	m := newTestMachine()
	st, _, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"a1", "a2", "a3", "a4", "a5",
	)
	firstQuestion := st.Questions[0].Question

	st, reply, _ := drive(t, m, st, "no, change it")
	if st.Stage != StageClarifying {
		t.Errorf("stage = %q, want %q", st.Stage, StageClarifying)
	}
	if len(st.Attributes) != 0 {
		t.Errorf("attributes not cleared: %v", st.Attributes)
	}
	if st.CurrentQuestionIndex != 0 {
		t.Errorf("question index = %d, want 0", st.CurrentQuestionIndex)
	}
	if !strings.Contains(reply.Text, firstQuestion) {
		t.Errorf("first question not re-asked verbatim, got %q", reply.Text)
	}
}

func TestConfirmationAmbiguousReprompts(t *testing.T) {
	m := newTestMachine()
	st, _, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"a1", "a2", "a3", "a4", "a5",
	)
	before := st
	st, reply, _ := drive(t, m, st, "maybe")

	if st.Stage != before.Stage || st.CurrentQuestionIndex != before.CurrentQuestionIndex {
		t.Errorf("ambiguous answer should not change state")
	}
	if !strings.Contains(reply.Text, "Yes to proceed") {
		t.Errorf("expected yes/no reprompt, got %q", reply.Text)
	}
}

func TestHighValueFlowRequiresWaiverJustification(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"a1", "a2", "a3", "a4", "a5",
		"yes",
		"within 2 weeks",
		"1000000",
	)

	if st.TimelineDays != 14 {
		t.Errorf("timeline days = %d, want 14", st.TimelineDays)
	}
	if st.Method != "Open Tender" || !st.RequiresWOC {
		t.Errorf("method = %q requiresWOC = %v, want Open Tender with waiver", st.Method, st.RequiresWOC)
	}
	if st.Stage != StageGatheringWOC {
		t.Fatalf("stage = %q, want %q", st.Stage, StageGatheringWOC)
	}
	if !strings.Contains(reply.Text, wocQuestions[0].Question) {
		t.Errorf("expected justification-reason question first, got %q", reply.Text)
	}

	st, reply, _ = drive(t, m, st,
		"single source availability",
		"compatibility with existing workstations",
		"price benchmarking against last year's contract",
	)
	if st.Stage != StageSupplierSelection {
		t.Fatalf("stage after waiver answers = %q, want %q", st.Stage, StageSupplierSelection)
	}
	if len(reply.Vendors) != 3 {
		t.Errorf("first batch = %d vendors, want 3", len(reply.Vendors))
	}
}

func TestLowValueFlowSkipsWaiver(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(),
		"I need 2 office chairs for Pune",
		"a1", "a2", "a3", "a4", "a5",
		"yes",
		"within 1 week",
		"40000",
	)

	if st.Method != "Direct Purchase" || st.RequiresWOC {
		t.Errorf("method = %q requiresWOC = %v, want Direct Purchase without waiver", st.Method, st.RequiresWOC)
	}
	if st.Stage != StageSupplierSelection {
		t.Fatalf("stage = %q, want %q", st.Stage, StageSupplierSelection)
	}
	if len(reply.Vendors) == 0 {
		t.Errorf("expected supplier cards in reply")
	}
}

func TestBudgetRejectsNonNumericInput(t *testing.T) {
	m := newTestMachine()
	st, reply, _ := drive(t, m, NewState(),
		"I need 2 office chairs for Pune",
		"a1", "a2", "a3", "a4", "a5",
		"yes",
		"within 1 week",
		"a generous amount",
	)

	if st.Stage != StageAskingBudget {
		t.Errorf("stage = %q, want %q", st.Stage, StageAskingBudget)
	}
	if st.Budget != 0 {
		t.Errorf("budget = %v, want 0", st.Budget)
	}
	if !strings.Contains(reply.Text, "budget") {
		t.Errorf("expected budget reprompt, got %q", reply.Text)
	}
}

func TestSupplierSelectionMoreRevealsNextBatch(t *testing.T) {
	m := newTestMachine()
	st, _, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"a1", "a2", "a3", "a4", "a5",
		"yes", "within 2 weeks", "1000000",
		"w1", "w2", "w3",
	)
	if len(st.Matches) != 4 {
		t.Fatalf("matches = %d, want 4", len(st.Matches))
	}

	st, reply, _ := drive(t, m, st, "4")
	if st.BatchStart != supplierBatchSize {
		t.Errorf("batch start = %d, want %d", st.BatchStart, supplierBatchSize)
	}
	if len(reply.Vendors) != 1 {
		t.Errorf("second batch = %d vendors, want 1", len(reply.Vendors))
	}

	st2, reply2, _ := drive(t, m, st, "more")
	if st2.BatchStart != st.BatchStart {
		t.Errorf("exhausted list should not advance the batch")
	}
	if !strings.Contains(reply2.Text, "no more supplier options") {
		t.Errorf("expected no-more message, got %q", reply2.Text)
	}
}

func TestSupplierSelectionRestartResetsEverything(t *testing.T) {
	m := newTestMachine()
	st, _, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"a1", "a2", "a3", "a4", "a5",
		"yes", "within 2 weeks", "1000000",
		"w1", "w2", "w3",
	)

	st, reply, effects := drive(t, m, st, "5")
	if st.Stage != StageInitial {
		t.Errorf("stage = %q, want %q", st.Stage, StageInitial)
	}
	if st.ProductType != "" || st.Quantity != 1 || st.Location != "Unknown" {
		t.Errorf("state not reset to defaults: %+v", st)
	}
	if !hasEffect(effects, EffectSessionReset) {
		t.Errorf("expected session reset effect")
	}
	if !strings.Contains(reply.Text, "start fresh") {
		t.Errorf("expected restart message, got %q", reply.Text)
	}
}

func TestSupplierSelectionYesAloneDoesNotPick(t *testing.T) {
	m := newTestMachine()
	st, _, _ := drive(t, m, NewState(),
		"I need 2 office chairs for Pune",
		"a1", "a2", "a3", "a4", "a5",
		"yes", "within 1 week", "40000",
	)
	before := st

	st, reply, effects := drive(t, m, st, "yes")
	if st.Stage != StageSupplierSelection || st.ConfirmedSeller != nil {
		t.Errorf("bare yes must not confirm a supplier")
	}
	if st.BatchStart != before.BatchStart {
		t.Errorf("bare yes must not advance the batch")
	}
	if len(effects) != 0 {
		t.Errorf("bare yes must not emit effects, got %v", effects)
	}
	if !strings.Contains(reply.Text, "pick a supplier by number") {
		t.Errorf("expected selection help, got %q", reply.Text)
	}
}

func TestSupplierPickCompletesPlan(t *testing.T) {
	m := newTestMachine()
	st, _, _ := drive(t, m, NewState(),
		"I need 50 office chairs for Mumbai",
		"ergonomic", "premium", "armrests", "ISO", "3rd floor",
		"yes", "within 2 weeks", "1000000",
		"w1", "w2", "w3",
	)
	top := st.Matches[0]

	st, reply, effects := drive(t, m, st, "1")
	if st.ConfirmedSeller == nil || st.ConfirmedSeller.Vendor.Name != top.Vendor.Name {
		t.Fatalf("confirmed seller = %+v, want %s", st.ConfirmedSeller, top.Vendor.Name)
	}
	if st.Stage != StageInitial {
		t.Errorf("stage after completion = %q, want %q", st.Stage, StageInitial)
	}
	if !strings.Contains(reply.Text, top.Vendor.Contact) {
		t.Errorf("reply should include contact info, got %q", reply.Text)
	}

	var plan *PlanSummary
	for _, e := range effects {
		if e.Type == EffectPlanCompleted {
			plan = e.Plan
		}
	}
	if plan == nil {
		t.Fatalf("expected plan completed effect")
	}
	if plan.ProductType != "office chairs" || plan.Quantity != 50 || plan.Method != "Open Tender" {
		t.Errorf("plan = %+v", plan)
	}
	if plan.WOCAnswers["woc_reason"] != "w1" {
		t.Errorf("waiver answers not carried into plan: %v", plan.WOCAnswers)
	}
	if plan.Attributes["specifications"] != "ergonomic" {
		t.Errorf("attributes not carried into plan: %v", plan.Attributes)
	}
}

func TestClarifyingAnswersInfluenceSupplierRanking(t *testing.T) {
	m := newTestMachine()
	tied := []supplier.Vendor{
		{Name: "PlainChairs", Category: "furniture", Items: []string{"office chairs"}, Price: 5000, DeliveryDays: 5, Rating: 4.0, Contact: "a@plain.in"},
		{Name: "MeshChairs", Category: "furniture", Items: []string{"office chairs", "ergonomic mesh chairs"}, Price: 5000, DeliveryDays: 5, Rating: 4.0, Contact: "b@mesh.in"},
	}

	st := NewState()
	var reply Reply
	for _, in := range []string{
		"I need 2 office chairs for Pune",
		"ergonomic mesh", "standard", "none", "office use", "5000",
		"yes", "within 1 week", "40000",
	} {
		st, reply, _ = m.Advance(context.Background(), st, in, tied)
	}

	if st.Stage != StageSupplierSelection {
		t.Fatalf("stage = %q, want %q", st.Stage, StageSupplierSelection)
	}
	if len(reply.Vendors) != 2 {
		t.Fatalf("vendors shown = %d, want 2", len(reply.Vendors))
	}
	if reply.Vendors[0].Name != "MeshChairs" {
		t.Errorf("top vendor = %s, want MeshChairs boosted by the clarification answer", reply.Vendors[0].Name)
	}
}

func TestNoMatchingSuppliersResetsWithExplanation(t *testing.T) {
	m := newTestMachine()
	st := NewState()
	var reply Reply
	var effects []Effect
	for _, in := range []string{
		"I need 2 office chairs for Pune",
		"a1", "a2", "a3", "a4", "a5",
		"yes", "within 1 week", "5000",
	} {
		st, reply, effects = m.Advance(context.Background(), st, in, chairCatalog)
	}

	if st.Stage != StageInitial {
		t.Errorf("stage = %q, want %q", st.Stage, StageInitial)
	}
	if !hasEffect(effects, EffectSessionReset) {
		t.Errorf("expected session reset effect")
	}
	if !strings.Contains(reply.Text, "couldn't find any suppliers") {
		t.Errorf("expected no-match explanation, got %q", reply.Text)
	}
}

func hasEffect(effects []Effect, typ EffectType) bool {
	for _, e := range effects {
		if e.Type == typ {
			return true
		}
	}
	return false
}
