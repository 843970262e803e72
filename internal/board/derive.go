package board

import (
	"math"
	"strings"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// StatusFor maps a progress value to its status.
func StatusFor(progress int) Status {
	switch progress {
	case 0:
		return StatusNotStarted
	case 100:
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

func (s Status) Icon() string {
	switch s {
	case StatusCompleted:
		return "✅"
	case StatusInProgress:
		return "⏳"
	default:
		return "🎯"
	}
}

// WinsList splits wins into lines and keeps the ones that are not blank.
// Lines are kept as typed. The result is never nil.
func WinsList(wins string) []string {
	list := []string{}
	for _, line := range strings.Split(wins, "\n") {
		if strings.TrimSpace(line) != "" {
			list = append(list, line)
		}
	}
	return list
}

func clampProgress(p int) int {
	return max(0, min(100, p))
}

// ProgressStats is the overview shown under the progress list.
type ProgressStats struct {
	Completed  int
	InProgress int
	Average    int
}

// ComputeStats aggregates a progress list. An empty list yields zeros.
func ComputeStats(items []ProgressItem) ProgressStats {
	var st ProgressStats
	if len(items) == 0 {
		return st
	}
	sum := 0
	for _, it := range items {
		switch StatusFor(it.Progress) {
		case StatusCompleted:
			st.Completed++
		case StatusInProgress:
			st.InProgress++
		}
		sum += it.Progress
	}
	st.Average = int(math.Round(float64(sum) / float64(len(items))))
	return st
}

var moodEmojis = map[string]string{
	"amazing":  "🤩",
	"great":    "😊",
	"good":     "🙂",
	"okay":     "😐",
	"tired":    "😴",
	"stressed": "😰",
}

// MoodEmoji returns the display emoji for mood, falling back to "great".
func MoodEmoji(mood string) string {
	if e, ok := moodEmojis[mood]; ok {
		return e
	}
	return moodEmojis["great"]
}
