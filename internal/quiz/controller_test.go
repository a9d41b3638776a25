package quiz

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/byond/leadquiz/internal/analysis"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingGenerator records every call and delegates to the real generator.
type countingGenerator struct {
	mu    sync.Mutex
	calls []map[int]string
	gen   *analysis.Generator
}

func newCountingGenerator() *countingGenerator {
	return &countingGenerator{gen: analysis.NewGenerator(analysis.DefaultConfig())}
}

func (g *countingGenerator) Generate(answers map[int]string) analysis.Result {
	g.mu.Lock()
	g.calls = append(g.calls, answers)
	g.mu.Unlock()
	return g.gen.Generate(answers)
}

func (g *countingGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func testCatalog() Catalog {
	return MustCatalog([]Step{
		{ID: 1, Question: "Branche?", Options: []string{"Produktion / Logistik", "SaaS / Tech", "Dienstleistung / Agentur", "Handel / E-Commerce"}},
		{ID: 2, Question: "Teamgröße?", Options: []string{"1-10", "11-50", "51-200", "200+"}},
		{ID: 3, Question: "Größter Schmerz?", Options: []string{"Zu hohe Prozesskosten", "Fachkräftemangel / Zeit"}},
		{ID: 4, Question: "Datenlage?", Options: []string{"Chaos / Excel", "Solides ERP/CRM"}},
		{ID: 5, Question: "Zeithorizont?", Options: []string{"Sofort", "Dieses Quartal"}},
		{ID: 6, Question: "Budget?", Options: []string{"< 10k", "> 10k"}},
	})
}

var sixAnswers = []string{
	"Dienstleistung / Agentur",
	"11-50",
	"Fachkräftemangel / Zeit",
	"Chaos / Excel",
	"Sofort",
	"> 10k",
}

func newTestController(t *testing.T, delay time.Duration) (*Controller, *countingGenerator) {
	t.Helper()
	gen := newCountingGenerator()
	c := NewController(testCatalog(), gen, Options{
		ProcessingDelay: delay,
		Logger:          zaptest.NewLogger(t),
	})
	return c, gen
}

func answerAll(t *testing.T, c *Controller) Transition {
	t.Helper()
	var last Transition
	for i, a := range sixAnswers {
		last = c.RecordAnswer(a)
		if i < len(sixAnswers)-1 {
			require.Equal(t, TransitionAdvanced, last, "answer %d", i+1)
		}
	}
	return last
}

func TestNewController_StartsAtStepOne(t *testing.T) {
	c, _ := newTestController(t, DefaultProcessingDelay)

	assert.Equal(t, PhaseInProgress, c.Phase())
	assert.Equal(t, 1, c.StepNumber())
	assert.Equal(t, 6, c.Total())
	assert.Empty(t, c.Answers())
	assert.NotEmpty(t, c.ID())

	step, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "Branche?", step.Question)

	_, ok = c.Result()
	assert.False(t, ok)
}

func TestRecordAnswer_AdvancesThroughSteps(t *testing.T) {
	c, gen := newTestController(t, DefaultProcessingDelay)

	for i := 0; i < 5; i++ {
		require.Equal(t, i+1, c.StepNumber())
		assert.Equal(t, TransitionAdvanced, c.RecordAnswer(sixAnswers[i]))
		assert.Len(t, c.Answers(), i+1)
	}

	assert.Equal(t, 6, c.StepNumber())
	assert.Equal(t, PhaseInProgress, c.Phase())
	assert.Zero(t, gen.Calls(), "generator must not run before the final step")
}

func TestRecordAnswer_FinalStepEntersProcessing(t *testing.T) {
	c, gen := newTestController(t, DefaultProcessingDelay)

	assert.Equal(t, TransitionProcessing, answerAll(t, c))
	assert.Equal(t, PhaseProcessing, c.Phase())
	assert.Equal(t, 1, gen.Calls())

	_, ok := c.Current()
	assert.False(t, ok, "no question is shown while processing")
	_, ok = c.Result()
	assert.False(t, ok, "result stays hidden until completion")

	require.True(t, c.Complete(c.ID()))
	assert.Equal(t, PhaseComplete, c.Phase())

	res, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, []string{"Dienstleistung / Agentur", "Fachkräftemangel / Zeit", "Chaos / Excel"}, res.Tags)
	assert.Equal(t, analysis.CategoryAgency, res.MainText[0].Category)
	assert.Equal(t, analysis.CategoryTime, res.MainText[1].Category)
	assert.Equal(t, analysis.CategoryChaos, res.SubText[0].Category)

	select {
	case <-c.Done():
	default:
		t.Fatal("Done should be closed after completion")
	}
}

func TestRecordAnswer_ZeroDelayCompletesImmediately(t *testing.T) {
	c, gen := newTestController(t, 0)

	assert.Equal(t, TransitionCompleted, answerAll(t, c))
	assert.Equal(t, PhaseComplete, c.Phase())
	assert.Equal(t, 1, gen.Calls())

	_, ok := c.Result()
	assert.True(t, ok)
}

func TestRecordAnswer_IgnoredAfterCompletion(t *testing.T) {
	c, gen := newTestController(t, 0)
	answerAll(t, c)

	before, _ := c.Result()
	answersBefore := c.Answers()

	assert.Equal(t, TransitionIgnored, c.RecordAnswer("Noch eine Antwort"))
	assert.Equal(t, 1, gen.Calls(), "generate must not run twice")
	assert.Equal(t, answersBefore, c.Answers())

	after, _ := c.Result()
	assert.Equal(t, before, after)
}

func TestRecordAnswer_IgnoredWhileProcessing(t *testing.T) {
	c, gen := newTestController(t, DefaultProcessingDelay)
	answerAll(t, c)

	assert.Equal(t, TransitionIgnored, c.RecordAnswer("double click"))
	assert.Equal(t, 1, gen.Calls())
	assert.Equal(t, "> 10k", c.Answers()[6])
}

func TestRecordAnswer_AcceptsFreeText(t *testing.T) {
	c, _ := newTestController(t, 0)

	c.RecordAnswer("Unknown Industry")
	for _, a := range sixAnswers[1:] {
		c.RecordAnswer(a)
	}

	res, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, analysis.CategoryAgency, res.MainText[0].Category)
	assert.Equal(t, "Unknown Industry", res.Tags[0])
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	c, _ := newTestController(t, 0)
	c.RecordAnswer("SaaS / Tech")

	a := c.Answers()
	a[1] = "tampered"
	a[9] = "extra"

	assert.Equal(t, Answers{1: "SaaS / Tech"}, c.Answers())
}

func TestComplete_WrongSessionIsNoop(t *testing.T) {
	c, _ := newTestController(t, DefaultProcessingDelay)
	answerAll(t, c)

	assert.False(t, c.Complete("some-other-session"))
	assert.Equal(t, PhaseProcessing, c.Phase())
}

func TestComplete_BeforeFinalAnswerIsNoop(t *testing.T) {
	c, _ := newTestController(t, DefaultProcessingDelay)
	c.RecordAnswer(sixAnswers[0])

	assert.False(t, c.Complete(c.ID()))
	assert.Equal(t, PhaseInProgress, c.Phase())
}

func TestComplete_Twice(t *testing.T) {
	c, _ := newTestController(t, DefaultProcessingDelay)
	answerAll(t, c)

	assert.True(t, c.Complete(c.ID()))
	assert.False(t, c.Complete(c.ID()))
}

func TestDispose_DropsPendingResult(t *testing.T) {
	c, gen := newTestController(t, DefaultProcessingDelay)
	answerAll(t, c)

	c.Dispose()

	assert.True(t, c.Disposed())
	assert.False(t, c.Complete(c.ID()), "completion after dispose must be a no-op")
	assert.Equal(t, PhaseProcessing, c.Phase())
	_, ok := c.Result()
	assert.False(t, ok)
	assert.Equal(t, TransitionIgnored, c.RecordAnswer("late"))
	assert.Equal(t, 1, gen.Calls())

	// Idempotent.
	c.Dispose()
}

func TestDispose_MidQuiz(t *testing.T) {
	c, gen := newTestController(t, DefaultProcessingDelay)
	c.RecordAnswer(sixAnswers[0])
	c.Dispose()

	assert.Equal(t, TransitionIgnored, c.RecordAnswer(sixAnswers[1]))
	assert.Equal(t, 2, c.StepNumber(), "step does not move after dispose")
	assert.Len(t, c.Answers(), 1)
	assert.Zero(t, gen.Calls())
}

func TestCompleteAfter_FiresOnce(t *testing.T) {
	c, gen := newTestController(t, 20*time.Millisecond)
	answerAll(t, c)

	c.CompleteAfter()
	c.CompleteAfter() // second arm is ignored

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not complete the session")
	}

	assert.Equal(t, PhaseComplete, c.Phase())
	assert.Equal(t, 1, gen.Calls())
}

func TestCompleteAfter_DisposeCancels(t *testing.T) {
	c, _ := newTestController(t, 50*time.Millisecond)
	answerAll(t, c)

	c.CompleteAfter()
	c.Dispose()

	select {
	case <-c.Done():
		t.Fatal("disposed session must not complete")
	case <-time.After(150 * time.Millisecond):
	}
	assert.Equal(t, PhaseProcessing, c.Phase())
}

func TestCompleteAfter_NotProcessing(t *testing.T) {
	c, _ := newTestController(t, 10*time.Millisecond)
	c.CompleteAfter()

	select {
	case <-c.Done():
		t.Fatal("session without final answer must not complete")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, PhaseInProgress, c.Phase())
}

func TestNewController_NegativeDelayClamped(t *testing.T) {
	c, _ := newTestController(t, -time.Second)
	assert.Zero(t, c.Delay())
	assert.Equal(t, TransitionCompleted, answerAll(t, c))
}

func TestNewController_UniqueSessionIDs(t *testing.T) {
	a, _ := newTestController(t, 0)
	b, _ := newTestController(t, 0)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestPhaseAndTransitionStrings(t *testing.T) {
	assert.Equal(t, "in_progress", PhaseInProgress.String())
	assert.Equal(t, "processing", PhaseProcessing.String())
	assert.Equal(t, "complete", PhaseComplete.String())
	assert.Equal(t, "ignored", TransitionIgnored.String())
	assert.Equal(t, "advanced", TransitionAdvanced.String())
	assert.Equal(t, "processing", TransitionProcessing.String())
	assert.Equal(t, "completed", TransitionCompleted.String())
}
