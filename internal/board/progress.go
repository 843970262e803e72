package board

import (
	"slices"

	"go.uber.org/zap"
)

func (b *Board) AddProgress(in ProgressInput) (ProgressItem, error) {
	if err := b.check(in); err != nil {
		return ProgressItem{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p := ProgressItem{
		ID:          b.nextID(),
		Goal:        in.Goal,
		Progress:    0,
		Status:      StatusNotStarted,
		LastUpdated: b.today(),
	}
	b.log.Debug("adding progress item", zap.Int64("id", p.ID), zap.String("goal", p.Goal))

	b.progress = append([]ProgressItem{p}, b.progress...)
	return p, saveSlot(b, SlotProgress, b.progress)
}

func (b *Board) RemoveProgress(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, ok := without(b.progress, id)
	if !ok {
		return nil
	}
	b.progress = list
	return saveSlot(b, SlotProgress, b.progress)
}

// UpdateProgress sets the progress of item id, clamped to 0..100, and
// refreshes its status and lastUpdated date.
func (b *Board) UpdateProgress(id int64, progress int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setProgress(id, func(int) int { return progress })
}

// StepProgress moves item id by delta percentage points.
func (b *Board) StepProgress(id int64, delta int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setProgress(id, func(cur int) int { return cur + delta })
}

func (b *Board) CompleteProgress(id int64) error {
	return b.UpdateProgress(id, 100)
}

// setProgress applies f to every item with id. Slots written before ids were
// unique may hold the same id more than once.
func (b *Board) setProgress(id int64, f func(cur int) int) error {
	items := slices.Clone(b.progress)
	found := false
	for i := range items {
		if items[i].ID != id {
			continue
		}
		found = true
		v := clampProgress(f(items[i].Progress))
		items[i].Progress = v
		items[i].Status = StatusFor(v)
		items[i].LastUpdated = b.today()
	}
	if !found {
		return nil
	}
	b.progress = items
	return saveSlot(b, SlotProgress, b.progress)
}
