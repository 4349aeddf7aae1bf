// Package simulation runs a Game of Life grid forward on a timer.
//
// A Driver owns the current grid, the generation counter, the running flag and
// the stepping interval. Once started it re-arms a single timer after every
// completed step. Stopping is cooperative: the next firing sees the driver
// stopped and does nothing.
package simulation

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// DefaultIntervalMillis is the delay between generations when none is configured
const DefaultIntervalMillis = 200

var (
	// ErrInvalidInterval is returned for a non-positive stepping interval
	ErrInvalidInterval = errors.New("interval must be positive")
	// ErrRunning is returned for edits that are only allowed while stopped
	ErrRunning = errors.New("simulation is running")
)

// State is a consistent snapshot of the driver
type State struct {
	Grid       model.Grid
	Generation uint64
	Running    bool
	Interval   time.Duration
	// Resets counts Clear and Reseed calls; frames from before a reset carry a smaller value
	Resets uint64
}

// Driver advances a grid one generation per interval while running
type Driver struct {
	mu         sync.Mutex
	grid       model.Grid
	generation uint64
	resets     uint64
	running    bool
	interval   time.Duration
	// epoch identifies the current run; firings armed by an earlier run are ignored
	epoch uint64
	timer Timer

	scheduler Scheduler
	step      model.StepFunc
	rng       *rand.Rand
	onStep    func(State)
}

// Option configures a Driver
type Option func(*Driver)

// WithScheduler replaces the wall clock scheduler
func WithScheduler(s Scheduler) Option {
	return func(d *Driver) { d.scheduler = s }
}

// WithStepFunc selects the stepping strategy
func WithStepFunc(f model.StepFunc) Option {
	return func(d *Driver) { d.step = f }
}

// WithIntervalMillis sets the initial interval, non-positive values are ignored
func WithIntervalMillis(ms int) Option {
	return func(d *Driver) {
		if ms > 0 {
			d.interval = time.Duration(ms) * time.Millisecond
		}
	}
}

// WithRand sets the random source used by Randomize, Reseed and Inject
func WithRand(r *rand.Rand) Option {
	return func(d *Driver) { d.rng = r }
}

// WithOnStep registers a callback run after every completed generation.
// It is called without the driver lock held, so it may call back into the driver.
func WithOnStep(f func(State)) Option {
	return func(d *Driver) { d.onStep = f }
}

// NewDriver returns a stopped driver holding an empty grid
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		grid:      model.Empty(),
		interval:  DefaultIntervalMillis * time.Millisecond,
		scheduler: ClockScheduler{},
		step:      model.Step,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = model.NewRand(time.Now().UnixNano())
	}
	return d
}

// Start begins stepping; the first generation is computed one interval from now
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}
	d.running = true
	d.epoch++
	d.scheduleLocked()
}

// Stop halts stepping. A step already in progress completes, but nothing further is scheduled.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}
	d.running = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SetIntervalMillis changes the delay used for steps scheduled from now on
func (d *Driver) SetIntervalMillis(ms int) error {
	if ms <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "[SetIntervalMillis] got %d ms", ms)
	}

	d.mu.Lock()
	d.interval = time.Duration(ms) * time.Millisecond
	d.mu.Unlock()
	return nil
}

// Clear empties the grid and resets the generation counter without changing the running state
func (d *Driver) Clear() {
	d.mu.Lock()
	d.grid = model.Empty()
	d.generation = 0
	d.resets++
	d.mu.Unlock()
}

// Reseed atomically clears the board, resets the generation counter and lays
// down the grid built by seed from an empty board and the driver's random
// source. No step can observe the cleared board in between. On error nothing changes.
func (d *Driver) Reseed(seed func(g model.Grid, r *rand.Rand) (model.Grid, error)) (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, err := seed(model.Empty(), d.rng)
	if err != nil {
		return d.stateLocked(), err
	}
	d.grid = g
	d.generation = 0
	d.resets++
	return d.stateLocked(), nil
}

// Inject sets n randomly chosen cells alive, used to shake a stagnant board
func (d *Driver) Inject(n int) {
	d.mu.Lock()
	d.grid = model.InjectRandomLife(d.grid, n, d.rng)
	d.mu.Unlock()
}

// StepOnce advances a single generation immediately, whether or not the driver is running
func (d *Driver) StepOnce() State {
	d.mu.Lock()
	d.advanceLocked()
	state := d.stateLocked()
	d.mu.Unlock()

	d.notify(state)
	return state
}

// Toggle flips one cell; the grid can only be edited by hand while stopped
func (d *Driver) Toggle(row, col int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return errors.Wrapf(ErrRunning, "[Toggle] (%d, %d)", row, col)
	}
	g, err := d.grid.WithCellToggled(row, col)
	if err != nil {
		return err
	}
	d.grid = g
	return nil
}

// Stamp adds a pattern at the centre of the grid
func (d *Driver) Stamp(p model.Pattern) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, err := model.StampCentered(d.grid, p)
	if err != nil {
		return err
	}
	d.grid = g
	return nil
}

// Randomize replaces the grid with a random one where each cell lives with probability p
func (d *Driver) Randomize(p float64) {
	d.mu.Lock()
	d.grid = model.Random(p, d.rng)
	d.mu.Unlock()
}

// SetGrid replaces the grid wholesale
func (d *Driver) SetGrid(g model.Grid) {
	d.mu.Lock()
	d.grid = g
	d.mu.Unlock()
}

// Grid returns the current snapshot
func (d *Driver) Grid() model.Grid {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.grid
}

// Generation returns how many generations have been computed since the last Clear
func (d *Driver) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}

// Running reports whether the driver is stepping
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Interval returns the delay used for the next scheduled step
func (d *Driver) Interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interval
}

// State returns a consistent snapshot of everything the driver holds
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stateLocked()
}

func (d *Driver) stateLocked() State {
	return State{
		Grid:       d.grid,
		Generation: d.generation,
		Running:    d.running,
		Interval:   d.interval,
		Resets:     d.resets,
	}
}

func (d *Driver) advanceLocked() {
	d.grid = d.step(d.grid)
	d.generation++
}

// scheduleLocked arms the next firing for the current epoch using the current interval
func (d *Driver) scheduleLocked() {
	epoch := d.epoch
	d.timer = d.scheduler.AfterFunc(d.interval, func() { d.fire(epoch) })
}

// fire is the timer callback: one generation, then re-arm, unless the run it belongs to has ended.
// Only one firing per epoch is ever pending, so firings never overlap.
func (d *Driver) fire(epoch uint64) {
	d.mu.Lock()
	if !d.running || d.epoch != epoch {
		d.mu.Unlock()
		return
	}
	d.advanceLocked()
	state := d.stateLocked()
	d.mu.Unlock()

	// notify before re-arming so observers see generations in order
	d.notify(state)

	d.mu.Lock()
	if d.running && d.epoch == epoch {
		d.scheduleLocked()
	}
	d.mu.Unlock()
}

func (d *Driver) notify(state State) {
	if d.onStep != nil {
		d.onStep(state)
	}
}
