package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/digit-span/internal/model"
)

// Errors returned by Controller operations
var (
	ErrNoSetSelected    = errors.New("no set selected")
	ErrUnknownSet       = errors.New("unknown set")
	ErrInvalidSet       = errors.New("invalid set")
	ErrSessionActive    = errors.New("session already in progress")
	ErrRestartRequired  = errors.New("session ended, restart required")
	ErrNotAwaitingInput = errors.New("not awaiting input")
)

// Snapshot is an immutable view of the controller state for rendering
type Snapshot struct {
	// Seq increases with every state change; renderers drop snapshots older
	// than the last one they drew, since callbacks can arrive out of order
	Seq       uint64
	Phase     model.Phase
	SetName   string
	SessionID string
	Round     int
	Level     int
	Score     int
	Active    bool
	Message   string
	Cue       model.Cue
	Direction model.Direction
	Digits    string // shown sequence, empty unless Phase is Displaying
	Input     string
	Revealed  string // correct answer after a failed recall
}

// Result describes a graded answer
type Result struct {
	Correct  bool
	Expected string
}

// Option configures a Controller
type Option func(*Controller)

// WithScheduler replaces the wall-clock scheduler
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithSeed makes sequence generation reproducible
func WithSeed(seed uint64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithSets replaces the built-in digit sets
func WithSets(sets map[string]model.DigitSet) Option {
	return func(c *Controller) { c.sets = sets }
}

// WithDebug enables verbose logging
func WithDebug(debug bool) Option {
	return func(c *Controller) { c.debug = debug }
}

// Controller drives the digit span round lifecycle
type Controller struct {
	mu        sync.Mutex
	sets      map[string]model.DigitSet
	scheduler Scheduler
	rng       *rand.Rand
	debug     bool

	selectedSet string
	phase       model.Phase
	session     *model.Session
	round       *model.Round
	message     string
	cue         model.Cue
	revealed    string

	// generation changes on every start and restart; pending timers compare
	// against it so callbacks from an abandoned session are ignored
	generation uint64
	seq        uint64

	onUpdate func(Snapshot)
}

// NewController creates a controller in the Idle phase
func NewController(opts ...Option) *Controller {
	c := &Controller{
		sets:      model.BuiltinSets(),
		scheduler: NewWallClock(),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		phase:     model.PhaseIdle,
		message:   MsgInitial,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetNames returns the selectable set names in display order
func (c *Controller) SetNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.SetNames(c.sets)
}

// SelectSet chooses the sampling pool for the next session
func (c *Controller) SelectSet(name string) error {
	c.mu.Lock()
	if c.phase.IsRunning() {
		c.mu.Unlock()
		return ErrSessionActive
	}
	if name != "" {
		set, ok := c.sets[name]
		if !ok {
			c.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrUnknownSet, name)
		}
		if err := set.Validate(); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("%w: %v", ErrInvalidSet, err)
		}
	}
	c.selectedSet = name
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// Start begins a new session at the initial level with the selected set
func (c *Controller) Start() error {
	c.mu.Lock()
	switch {
	case c.selectedSet == "":
		c.mu.Unlock()
		return ErrNoSetSelected
	case c.phase.IsRunning():
		c.mu.Unlock()
		return ErrSessionActive
	case c.phase.IsTerminal():
		c.mu.Unlock()
		return ErrRestartRequired
	}

	c.generation++
	c.session = model.NewSession(uuid.NewString(), c.selectedSet)
	c.revealed = ""
	log.Printf("Session %s started: set=%s level=%d", c.session.ID, c.session.SetName, c.session.Level)

	c.nextRoundLocked()
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// SetInput records the raw answer text while input is enabled
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	if c.round == nil || !c.phase.AcceptsInput() {
		c.mu.Unlock()
		return
	}
	c.round.Input = text
	c.mu.Unlock()
}

// Submit grades an answer for the current round
func (c *Controller) Submit(input string) (Result, error) {
	c.mu.Lock()
	if !c.phase.AcceptsInput() || c.session == nil || !c.session.Active || c.round == nil {
		c.mu.Unlock()
		return Result{}, ErrNotAwaitingInput
	}

	c.round.Input = input
	expected := c.round.ExpectedAnswer()
	result := Result{Correct: c.round.Check(input), Expected: expected}

	if result.Correct {
		c.session.RecordSuccess()
		c.phase = model.PhaseResolvedSuccess
		c.message = MsgSuccess
		c.cue = model.CueSuccess
		log.Printf("Session %s round %d correct: score=%d", c.session.ID, c.round.Number, c.session.Score)

		generation := c.generation
		c.scheduler.AfterFunc(SuccessPause, func() {
			c.onSuccessPauseElapsed(generation)
		})
	} else {
		c.session.Stop()
		c.phase = model.PhaseResolvedFailure
		c.revealed = expected
		c.message = failureMessage(expected)
		c.cue = model.CueFailure
		log.Printf("Session %s round %d incorrect: got=%q want=%q score=%d",
			c.session.ID, c.round.Number, input, expected, c.session.Score)
	}

	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
	return result, nil
}

// SubmitOnEnter is the Enter-key path: it submits only while awaiting input
// in an active session and reports whether a submission happened
func (c *Controller) SubmitOnEnter(input string) bool {
	_, err := c.Submit(input)
	return err == nil
}

// Restart returns to Idle with default level, score and message
func (c *Controller) Restart() {
	c.mu.Lock()
	if c.session != nil {
		log.Printf("Session %s restarted at level=%d score=%d", c.session.ID, c.session.Level, c.session.Score)
	}
	c.generation++
	c.phase = model.PhaseIdle
	c.session = nil
	c.round = nil
	c.message = MsgInitial
	c.cue = model.CueNeutral
	c.revealed = ""
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// nextRoundLocked generates a round at the session level and schedules
// the end of its display phase
func (c *Controller) nextRoundLocked() {
	set := c.sets[c.session.SetName]
	direction := model.Directions[c.rng.IntN(len(model.Directions))]
	pool := set.Pool(direction)

	level := c.session.Level
	digits := make([]int, level)
	for i := range digits {
		digits[i] = pool[c.rng.IntN(len(pool))]
	}

	c.session.Rounds++
	c.round = &model.Round{
		ID:        uuid.NewString(),
		Number:    c.session.Rounds,
		Direction: direction,
		Digits:    digits,
		CreatedAt: time.Now(),
	}
	c.phase = model.PhaseDisplaying
	c.cue = model.CueNeutral
	c.message = focusMessage(direction)

	if c.debug {
		log.Printf("Session %s round %d generated: direction=%s digits=%s",
			c.session.ID, c.round.Number, direction, c.round.DisplayString())
	}

	generation := c.generation
	roundID := c.round.ID
	c.scheduler.AfterFunc(DisplayDuration(level), func() {
		c.onDisplayElapsed(generation, roundID)
	})
}

// onDisplayElapsed hides the sequence unless the round it belongs to is gone
func (c *Controller) onDisplayElapsed(generation uint64, roundID string) {
	c.mu.Lock()
	if c.generation != generation || c.phase != model.PhaseDisplaying || c.round == nil || c.round.ID != roundID {
		c.mu.Unlock()
		if c.debug {
			log.Printf("Ignoring stale display timer for round %s", roundID)
		}
		return
	}
	c.phase = model.PhaseAwaitingInput
	c.message = MsgEnterSequence
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// onSuccessPauseElapsed advances the level and starts the next round
func (c *Controller) onSuccessPauseElapsed(generation uint64) {
	c.mu.Lock()
	if c.generation != generation || c.phase != model.PhaseResolvedSuccess || c.session == nil {
		c.mu.Unlock()
		if c.debug {
			log.Printf("Ignoring stale success timer for generation %d", generation)
		}
		return
	}
	c.session.Advance()
	c.nextRoundLocked()
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// publishLocked stamps a state change and returns its snapshot
func (c *Controller) publishLocked() Snapshot {
	c.seq++
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Seq:      c.seq,
		Phase:    c.phase,
		SetName:  c.selectedSet,
		Level:    model.InitialLevel,
		Message:  c.message,
		Cue:      c.cue,
		Revealed: c.revealed,
	}
	if c.session != nil {
		snap.SessionID = c.session.ID
		snap.Level = c.session.Level
		snap.Score = c.session.Score
		snap.Active = c.session.Active
		snap.Round = c.session.Rounds
	}
	if c.round != nil {
		snap.Direction = c.round.Direction
		snap.Input = c.round.Input
		if c.phase == model.PhaseDisplaying {
			snap.Digits = c.round.DisplayString()
		}
	}
	return snap
}

// notify calls the update callback if set
func (c *Controller) notify(snap Snapshot) {
	c.mu.Lock()
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
