package dashboard

import "time"

// Student is the singleton profile record. It is seeded once and only ever
// patched, never created or deleted.
type Student struct {
	Name              string  `json:"name"`
	Avatar            string  `json:"avatar"`
	Major             string  `json:"major"`
	Year              string  `json:"year"`
	University        string  `json:"university"`
	ProductivityScore int     `json:"productivityScore"`
	StreakDays        int     `json:"streakDays"`
	FocusHoursToday   float64 `json:"focusHoursToday"`
	TotalTasksDone    int     `json:"totalTasksDone"`
}

type Assignment struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Subject        string    `json:"subject"`
	Deadline       string    `json:"deadline"` // ISO calendar date (YYYY-MM-DD)
	Priority       string    `json:"priority"` // high|medium|low
	Completed      bool      `json:"completed"`
	Progress       int       `json:"progress"`
	EstimatedHours float64   `json:"estimatedHours"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MoodLog holds at most one entry per calendar date; the create operation
// upserts by Date.
type MoodLog struct {
	ID        int       `json:"id"`
	Date      string    `json:"date"`
	Mood      string    `json:"mood"`
	MoodScore int       `json:"moodScore"`
	Energy    int       `json:"energy"`
	Note      string    `json:"note"`
	Stress    int       `json:"stress"`
	CreatedAt time.Time `json:"createdAt"`
}

type HabitLog struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Habit is seeded and never created or deleted over the API; only its daily
// log values change. Logs hold at most one entry per date.
type Habit struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Icon   string     `json:"icon"`
	Unit   string     `json:"unit"`
	Target float64    `json:"target"`
	Color  string     `json:"color"`
	Logs   []HabitLog `json:"logs"`
}

type ChatMessage struct {
	ID        int       `json:"id"`
	Role      string    `json:"role"` // user|ai
	Content   string    `json:"content"`
	Time      string    `json:"time"` // display clock string, e.g. "12:01 PM"
	CreatedAt time.Time `json:"createdAt"`
}

// WeeklyPlan is a nullable singleton, overwritten wholesale on every save.
type WeeklyPlan struct {
	Plan        map[string]any `json:"plan"`
	Inputs      map[string]any `json:"inputs"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// Data is the root document persisted as a single JSON file. Each id-bearing
// collection carries its next-id counter alongside it.
type Data struct {
	Student          Student       `json:"student"`
	Assignments      []Assignment  `json:"assignments"`
	NextAssignmentID int           `json:"nextAssignmentId"`
	MoodLogs         []MoodLog     `json:"moodLogs"`
	NextMoodID       int           `json:"nextMoodId"`
	Habits           []Habit       `json:"habits"`
	ChatMessages     []ChatMessage `json:"chatMessages"`
	NextChatID       int           `json:"nextChatId"`
	WeeklyPlan       *WeeklyPlan   `json:"weeklyPlan"`
}
