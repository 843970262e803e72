package board

import "go.uber.org/zap"

func (b *Board) AddExercise(in ExerciseInput) (Exercise, error) {
	if err := b.check(in); err != nil {
		return Exercise{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	e := Exercise{
		ID:       b.nextID(),
		Type:     in.Type,
		Duration: in.Duration,
		Calories: in.Calories,
		Notes:    in.Notes,
		Date:     b.today(),
	}
	b.log.Debug("adding exercise", zap.Int64("id", e.ID), zap.String("type", e.Type))

	b.exercises = append([]Exercise{e}, b.exercises...)
	return e, saveSlot(b, SlotExercises, b.exercises)
}

func (b *Board) RemoveExercise(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, ok := without(b.exercises, id)
	if !ok {
		return nil
	}
	b.exercises = list
	return saveSlot(b, SlotExercises, b.exercises)
}
