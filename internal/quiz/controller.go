package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/analysis"
)

// DefaultProcessingDelay is the pause between the final answer and the
// result panel.
const DefaultProcessingDelay = 600 * time.Millisecond

// Generator composes the analysis for a completed answer set.
type Generator interface {
	Generate(answers map[int]string) analysis.Result
}

// Answers maps a step id to the option text the user picked.
type Answers map[int]string

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	PhaseInProgress Phase = iota // Questions are being answered
	PhaseProcessing              // Final answer recorded, result pending
	PhaseComplete                // Result available
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in_progress"
	case PhaseProcessing:
		return "processing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Transition reports what RecordAnswer did.
type Transition int

const (
	TransitionIgnored    Transition = iota // Session not accepting answers
	TransitionAdvanced                     // Moved to the next step
	TransitionProcessing                   // Final answer recorded, result pending
	TransitionCompleted                    // Final answer recorded, result applied
)

func (t Transition) String() string {
	switch t {
	case TransitionIgnored:
		return "ignored"
	case TransitionAdvanced:
		return "advanced"
	case TransitionProcessing:
		return "processing"
	case TransitionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	// ProcessingDelay is how long the result stays pending after the final
	// answer. Zero completes immediately.
	ProcessingDelay time.Duration

	// Logger receives session lifecycle events. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the standard 600ms processing delay and no logger.
func DefaultOptions() Options {
	return Options{ProcessingDelay: DefaultProcessingDelay}
}

// Controller drives one quiz session from the first question to the result.
//
// Answers are recorded strictly forward; there is no way back. The final
// answer generates the analysis exactly once. The result is applied either
// by Complete (event-loop callers echo the session id back after the delay)
// or by the timer armed with CompleteAfter. Dispose tears the session down
// and turns every pending completion into a no-op.
type Controller struct {
	mu       sync.Mutex
	id       string
	catalog  Catalog
	gen      Generator
	delay    time.Duration
	log      *zap.Logger
	step     int
	answers  Answers
	phase    Phase
	pending  *analysis.Result
	result   *analysis.Result
	disposed bool
	timer    *time.Timer
	done     chan struct{}
}

// NewController starts a session at step 1.
func NewController(catalog Catalog, gen Generator, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	delay := opts.ProcessingDelay
	if delay < 0 {
		delay = 0
	}

	id := uuid.New().String()
	c := &Controller{
		id:      id,
		catalog: catalog,
		gen:     gen,
		delay:   delay,
		log:     log.With(zap.String("session_id", id)),
		step:    1,
		answers: make(Answers),
		phase:   PhaseInProgress,
		done:    make(chan struct{}),
	}
	c.log.Info("quiz session started",
		zap.Int("steps", catalog.Len()),
		zap.Duration("processing_delay", delay))
	return c
}

// ID returns the session id.
func (c *Controller) ID() string {
	return c.id
}

// Delay returns the configured processing delay.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// StepNumber returns the 1-based current step.
func (c *Controller) StepNumber() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Total returns the number of steps (the last step id).
func (c *Controller) Total() int {
	return c.catalog.Last()
}

// Current returns the step to render. ok is false once the session has
// left the in-progress phase.
func (c *Controller) Current() (step Step, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseInProgress {
		return Step{}, false
	}
	return c.catalog.Step(c.step)
}

// Answers returns a copy of the recorded answers.
func (c *Controller) Answers() Answers {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers.Clone()
}

// Result returns the analysis once the session is complete.
func (c *Controller) Result() (analysis.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return analysis.Result{}, false
	}
	return *c.result, true
}

// Disposed reports whether the session was torn down.
func (c *Controller) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Done is closed when the result is applied.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// RecordAnswer stores option for the current step and moves the session
// forward. Any text is accepted. Answers arriving after the final step, or
// after Dispose, are ignored.
func (c *Controller) RecordAnswer(option string) Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || c.phase != PhaseInProgress {
		c.log.Debug("answer ignored",
			zap.String("phase", c.phase.String()),
			zap.Bool("disposed", c.disposed))
		return TransitionIgnored
	}

	c.answers[c.step] = option
	c.log.Debug("answer recorded", zap.Int("step", c.step), zap.String("option", option))

	if c.step < c.catalog.Last() {
		c.step++
		return TransitionAdvanced
	}

	res := c.gen.Generate(c.answers.Clone())
	c.pending = &res
	c.phase = PhaseProcessing
	c.log.Info("quiz answers submitted", zap.Strings("tags", res.Tags))

	if c.delay == 0 {
		c.applyLocked()
		return TransitionCompleted
	}
	return TransitionProcessing
}

// Complete applies the pending result for sessionID. It returns false, and
// changes nothing, if the id belongs to another session, the session was
// disposed, or no result is pending.
func (c *Controller) Complete(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sessionID != c.id {
		return false
	}
	if c.disposed || c.phase != PhaseProcessing || c.pending == nil {
		c.log.Debug("completion skipped",
			zap.String("phase", c.phase.String()),
			zap.Bool("disposed", c.disposed))
		return false
	}
	c.applyLocked()
	return true
}

// CompleteAfter arms a one-shot timer that applies the pending result after
// the processing delay. Callers without an event loop wait on Done.
// Calling it again, or outside the processing phase, does nothing.
func (c *Controller) CompleteAfter() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || c.phase != PhaseProcessing || c.timer != nil {
		return
	}
	id := c.id
	c.timer = time.AfterFunc(c.delay, func() {
		c.Complete(id)
	})
}

// Dispose ends the session. A pending result is dropped and any armed timer
// is stopped. Safe to call more than once.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.disposed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = nil
	c.log.Info("quiz session disposed",
		zap.String("phase", c.phase.String()),
		zap.Int("answered", len(c.answers)))
}

func (c *Controller) applyLocked() {
	c.result = c.pending
	c.pending = nil
	c.phase = PhaseComplete
	c.log.Info("quiz session complete",
		zap.Strings("main_text", c.result.MainTextKeys()),
		zap.Strings("sub_text", c.result.SubTextKeys()))
	close(c.done)
}
