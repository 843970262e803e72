package board

// Slot keys, one per record kind.
const (
	SlotGoals     = "visionGoals"
	SlotJournal   = "journalEntries"
	SlotExercises = "exercises"
	SlotProgress  = "progressItems"
)

type VisionGoal struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	ImageURL    string `json:"imageUrl"`
	Date        string `json:"date"`
}

type JournalEntry struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Mood       string `json:"mood"`
	Content    string `json:"content"`
	Wins       string `json:"wins"`
	Challenges string `json:"challenges"`
	Tomorrow   string `json:"tomorrow"`
	Date       string `json:"date"`

	// WinsList is derived from Wins and rebuilt on load.
	WinsList []string `json:"winsList"`
}

type Exercise struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Calories string `json:"calories"`
	Notes    string `json:"notes"`
	Date     string `json:"date"`
}

type ProgressItem struct {
	ID       int64  `json:"id"`
	Goal     string `json:"goal"`
	Progress int    `json:"progress"`
	// Status is derived from Progress and rebuilt on load.
	Status      Status `json:"status"`
	LastUpdated string `json:"lastUpdated"`
}

func (g VisionGoal) recordID() int64   { return g.ID }
func (e JournalEntry) recordID() int64 { return e.ID }
func (e Exercise) recordID() int64     { return e.ID }
func (p ProgressItem) recordID() int64 { return p.ID }

// Form inputs. Only the fields tagged required are checked.
type GoalInput struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Description string
	TargetDate  string
	ImageURL    string
}

type JournalInput struct {
	Title      string `validate:"required"`
	Mood       string
	Content    string `validate:"required"`
	Wins       string
	Challenges string
	Tomorrow   string
}

type ExerciseInput struct {
	Type     string `validate:"required"`
	Duration string `validate:"required"`
	Calories string
	Notes    string
}

type ProgressInput struct {
	Goal string `validate:"required"`
}

// Snapshot is a point-in-time copy of every list.
type Snapshot struct {
	Goals     []VisionGoal   `json:"visionGoals"`
	Journal   []JournalEntry `json:"journalEntries"`
	Exercises []Exercise     `json:"exercises"`
	Progress  []ProgressItem `json:"progressItems"`
}

// Enumerations offered by the forms.
var (
	Categories    = []string{"fitness", "career", "finance", "education", "travel", "relationships", "personal", "creative"}
	Moods         = []string{"amazing", "great", "good", "okay", "tired", "stressed"}
	ExerciseTypes = []string{"running", "gym", "yoga", "cycling", "swimming", "walking", "sports", "hiit"}
)

var categoryLabels = map[string]string{
	"fitness":       "💪 Fitness",
	"career":        "💼 Career",
	"finance":       "💰 Finance",
	"education":     "📚 Education",
	"travel":        "✈️ Travel",
	"relationships": "❤️ Relationships",
	"personal":      "🌟 Personal Growth",
	"creative":      "🎨 Creative",
}

var exerciseLabels = map[string]string{
	"running":  "🏃 Running",
	"gym":      "🏋️ Gym",
	"yoga":     "🧘 Yoga",
	"cycling":  "🚴 Cycling",
	"swimming": "🏊 Swimming",
	"walking":  "🚶 Walking",
	"sports":   "⚽ Sports",
	"hiit":     "🔥 HIIT",
}

func CategoryLabel(c string) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return c
}

func ExerciseLabel(t string) string {
	if l, ok := exerciseLabels[t]; ok {
		return l
	}
	return t
}
