package board

import (
	"slices"

	"go.uber.org/zap"
)

func (b *Board) AddGoal(in GoalInput) (VisionGoal, error) {
	if err := b.check(in); err != nil {
		return VisionGoal{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	g := VisionGoal{
		ID:          b.nextID(),
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		TargetDate:  in.TargetDate,
		ImageURL:    ResolveImageURL(in.ImageURL, in.Category),
		Date:        b.today(),
	}
	b.log.Debug("adding goal", zap.Int64("id", g.ID), zap.String("image", g.ImageURL))

	b.goals = append([]VisionGoal{g}, b.goals...)
	return g, saveSlot(b, SlotGoals, b.goals)
}

func (b *Board) RemoveGoal(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, ok := without(b.goals, id)
	if !ok {
		return nil
	}
	b.goals = list
	return saveSlot(b, SlotGoals, b.goals)
}

// MoveGoal shifts a goal delta positions within the list, stopping at either
// end.
func (b *Board) MoveGoal(id int64, delta int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	from := -1
	for i, g := range b.goals {
		if g.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return nil
	}
	to := max(0, min(len(b.goals)-1, from+delta))
	if to == from {
		return nil
	}

	moved := b.goals[from]
	goals := slices.Delete(slices.Clone(b.goals), from, from+1)
	b.goals = slices.Insert(goals, to, moved)
	return saveSlot(b, SlotGoals, b.goals)
}

// DisplayImage returns the URL to show for g. A stored URL that cannot be
// used is replaced by the category placeholder for display only.
func (b *Board) DisplayImage(g VisionGoal) string {
	if err := CheckImageURL(g.ImageURL); err != nil {
		b.log.Warn("image failed to load, using placeholder",
			zap.Int64("goal", g.ID), zap.String("url", g.ImageURL), zap.Error(err))
		return PlaceholderImage(g.Category)
	}
	return g.ImageURL
}
