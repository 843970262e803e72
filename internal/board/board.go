package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrIncomplete is returned by the Add methods when a required field is blank.
// Nothing is stored in that case.
var ErrIncomplete = errors.New("required fields missing")

// Slots is the durable key-value storage the board mirrors its lists into.
type Slots interface {
	GetSlot(key string) (value string, ok bool, err error)
	SetSlot(key, value string) error
}

type Option func(*Board)

func WithLogger(l *zap.Logger) Option {
	return func(b *Board) { b.log = l }
}

// WithClock overrides time.Now for ids and dates.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// Board holds the four record lists, newest first. Every mutation writes the
// affected list back to its slot before returning.
type Board struct {
	mu       sync.Mutex
	slots    Slots
	log      *zap.Logger
	now      func() time.Time
	validate *validator.Validate
	ids      idGen

	goals     []VisionGoal
	journal   []JournalEntry
	exercises []Exercise
	progress  []ProgressItem
}

// New loads every list from slots. Missing or unreadable slots start empty,
// except progress which starts from the seed rows.
func New(slots Slots, opts ...Option) (*Board, error) {
	b := &Board{
		slots:    slots,
		log:      zap.NewNop(),
		now:      time.Now,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, o := range opts {
		o(b)
	}

	var err error
	if b.goals, _, err = loadSlot[VisionGoal](b, SlotGoals); err != nil {
		return nil, err
	}
	if b.journal, _, err = loadSlot[JournalEntry](b, SlotJournal); err != nil {
		return nil, err
	}
	for i := range b.journal {
		b.journal[i].WinsList = WinsList(b.journal[i].Wins)
	}
	if b.exercises, _, err = loadSlot[Exercise](b, SlotExercises); err != nil {
		return nil, err
	}
	var ok bool
	if b.progress, ok, err = loadSlot[ProgressItem](b, SlotProgress); err != nil {
		return nil, err
	}
	if !ok {
		b.progress = seedProgress(b.today())
	}
	for i := range b.progress {
		b.progress[i].Progress = clampProgress(b.progress[i].Progress)
		b.progress[i].Status = StatusFor(b.progress[i].Progress)
	}

	for _, g := range b.goals {
		b.ids.observe(g.ID)
	}
	for _, e := range b.journal {
		b.ids.observe(e.ID)
	}
	for _, e := range b.exercises {
		b.ids.observe(e.ID)
	}
	for _, p := range b.progress {
		b.ids.observe(p.ID)
	}
	return b, nil
}

func seedProgress(today string) []ProgressItem {
	labels := []string{"Fitness Goals", "Career Growth", "Financial Goals", "Personal Development"}
	items := make([]ProgressItem, len(labels))
	for i, l := range labels {
		items[i] = ProgressItem{
			ID:          int64(i + 1),
			Goal:        l,
			Progress:    0,
			Status:      StatusNotStarted,
			LastUpdated: today,
		}
	}
	return items
}

// loadSlot decodes the list stored under key. ok is false when the slot is
// absent or does not parse; only storage failures are returned as errors.
func loadSlot[T any](b *Board, key string) ([]T, bool, error) {
	raw, found, err := b.slots.GetSlot(key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return []T{}, false, nil
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		b.log.Warn("discarding unreadable slot", zap.String("slot", key), zap.Error(err))
		return []T{}, false, nil
	}
	return list, true, nil
}

func saveSlot[T any](b *Board, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.slots.SetSlot(key, string(data)); err != nil {
		b.log.Error("persist failed", zap.String("slot", key), zap.Error(err))
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

type record interface {
	recordID() int64
}

// without returns list minus every record with id, and whether any was
// present.
func without[T record](list []T, id int64) ([]T, bool) {
	out := slices.DeleteFunc(slices.Clone(list), func(r T) bool { return r.recordID() == id })
	return out, len(out) != len(list)
}

func (b *Board) check(in any) error {
	if err := b.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fe.Field()
			}
			return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

func (b *Board) today() string {
	return b.now().Format(time.DateOnly)
}

func (b *Board) nextID() int64 {
	return b.ids.next(b.now().UnixMilli())
}

func (b *Board) Goals() []VisionGoal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.goals)
}

func (b *Board) Journal() []JournalEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := slices.Clone(b.journal)
	for i := range out {
		out[i].WinsList = slices.Clone(out[i].WinsList)
	}
	return out
}

func (b *Board) Exercises() []Exercise {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.exercises)
}

func (b *Board) Progress() []ProgressItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.progress)
}

func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Goals:     b.Goals(),
		Journal:   b.Journal(),
		Exercises: b.Exercises(),
		Progress:  b.Progress(),
	}
}

// Stats aggregates the current progress list.
func (b *Board) Stats() ProgressStats {
	return ComputeStats(b.Progress())
}
