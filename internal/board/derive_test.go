package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusNotStarted, StatusFor(0))
	assert.Equal(t, StatusCompleted, StatusFor(100))
	for _, p := range []int{1, 10, 50, 90, 99} {
		assert.Equal(t, StatusInProgress, StatusFor(p), p)
	}
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "✅", StatusCompleted.Icon())
	assert.Equal(t, "⏳", StatusInProgress.Icon())
	assert.Equal(t, "🎯", StatusNotStarted.Icon())
}

func TestWinsList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"\n\n  \n", []string{}},
		{"one", []string{"one"}},
		{"one\ntwo", []string{"one", "two"}},
		{"  padded  \n\nlast", []string{"  padded  ", "last"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WinsList(tt.in), "%q", tt.in)
	}
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, ProgressStats{}, ComputeStats(nil))

	items := []ProgressItem{{Progress: 100}, {Progress: 100}, {Progress: 30}, {Progress: 0}}
	assert.Equal(t, ProgressStats{Completed: 2, InProgress: 1, Average: 58}, ComputeStats(items))

	// 0.5 rounds up.
	assert.Equal(t, 1, ComputeStats([]ProgressItem{{Progress: 1}, {Progress: 0}}).Average)
}

func TestComputeStatsUsesProgressNotStoredStatus(t *testing.T) {
	items := []ProgressItem{{Progress: 100, Status: StatusNotStarted}}
	assert.Equal(t, 1, ComputeStats(items).Completed)
}

func TestMoodEmoji(t *testing.T) {
	assert.Equal(t, "🤩", MoodEmoji("amazing"))
	assert.Equal(t, "😰", MoodEmoji("stressed"))
	assert.Equal(t, "😊", MoodEmoji(""))
	assert.Equal(t, "😊", MoodEmoji("confused"))
}

func TestPlaceholderImage(t *testing.T) {
	for _, c := range Categories {
		assert.NotEmpty(t, PlaceholderImage(c), c)
		assert.NoError(t, CheckImageURL(PlaceholderImage(c)), c)
	}
	assert.Equal(t, PlaceholderImage("personal"), PlaceholderImage(""))
}

func TestResolveImageURL(t *testing.T) {
	assert.Equal(t, PlaceholderImage("fitness"), ResolveImageURL("", "fitness"))
	assert.Equal(t, "x", ResolveImageURL("x", "fitness"))
}

func TestCheckImageURL(t *testing.T) {
	assert.NoError(t, CheckImageURL("https://example.com/a.png"))
	assert.NoError(t, CheckImageURL("http://example.com/a.png"))
	assert.Error(t, CheckImageURL(""))
	assert.Error(t, CheckImageURL("example.com/a.png"))
	assert.Error(t, CheckImageURL("ftp://example.com/a.png"))
	assert.Error(t, CheckImageURL("https://"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "💪 Fitness", CategoryLabel("fitness"))
	assert.Equal(t, "other", CategoryLabel("other"))
	assert.Equal(t, "🔥 HIIT", ExerciseLabel("hiit"))
	assert.Equal(t, "other", ExerciseLabel("other"))
}

func TestRandomQuote(t *testing.T) {
	assert.Contains(t, Quotes, RandomQuote())
}

func TestIDGen(t *testing.T) {
	var g idGen
	assert.Equal(t, int64(1000), g.next(1000))
	assert.Equal(t, int64(1001), g.next(1000))
	assert.Equal(t, int64(1002), g.next(900))
	assert.Equal(t, int64(5000), g.next(5000))

	g.observe(10)
	assert.Equal(t, int64(5001), g.next(0))
}
