package board

import "go.uber.org/zap"

func (b *Board) AddJournal(in JournalInput) (JournalEntry, error) {
	if err := b.check(in); err != nil {
		return JournalEntry{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	e := JournalEntry{
		ID:         b.nextID(),
		Title:      in.Title,
		Mood:       in.Mood,
		Content:    in.Content,
		Wins:       in.Wins,
		Challenges: in.Challenges,
		Tomorrow:   in.Tomorrow,
		Date:       b.today(),
		WinsList:   WinsList(in.Wins),
	}
	b.log.Debug("adding journal entry", zap.Int64("id", e.ID), zap.Int("wins", len(e.WinsList)))

	b.journal = append([]JournalEntry{e}, b.journal...)
	return e, saveSlot(b, SlotJournal, b.journal)
}

func (b *Board) RemoveJournal(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, ok := without(b.journal, id)
	if !ok {
		return nil
	}
	b.journal = list
	return saveSlot(b, SlotJournal, b.journal)
}
