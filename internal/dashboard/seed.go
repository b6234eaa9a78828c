package dashboard

import "time"

// WelcomeContent is the fixed AI mentor greeting. Clearing the chat history
// resets the collection to a single message with this content.
const WelcomeContent = "👋 Hi Soham! I'm your AI Mentor. I can help you with study planning, overcoming stress, optimizing your schedule, and exam prep. What would you like help with today?"

// WelcomeTime is the display time shown on the seeded welcome message.
const WelcomeTime = "12:01 PM"

// WelcomeMessage returns the canonical first chat message (id 1).
func WelcomeMessage() ChatMessage {
	return ChatMessage{
		ID:        1,
		Role:      "ai",
		Content:   WelcomeContent,
		Time:      WelcomeTime,
		CreatedAt: time.Now(),
	}
}

// DefaultData returns the seed document used when no persisted file exists.
// All next-id counters start one past the highest seeded id.
func DefaultData() *Data {
	now := time.Now()
	return &Data{
		Student: Student{
			Name:              "Soham Rathi",
			Avatar:            "SR",
			Major:             "Computer Science",
			Year:              "Sophomore",
			University:        "MIT",
			ProductivityScore: 78,
			StreakDays:        12,
			FocusHoursToday:   4.5,
			TotalTasksDone:    127,
		},

		Assignments: []Assignment{
			{ID: 1, Title: "Data Structures Assignment #4", Subject: "CS301", Deadline: "2026-02-24", Priority: "high", Completed: false, Progress: 35, EstimatedHours: 5, CreatedAt: now},
			{ID: 2, Title: "Linear Algebra Problem Set", Subject: "MATH201", Deadline: "2026-02-25", Priority: "high", Completed: false, Progress: 60, EstimatedHours: 3, CreatedAt: now},
			{ID: 3, Title: "Operating Systems Lab Report", Subject: "CS401", Deadline: "2026-02-28", Priority: "medium", Completed: false, Progress: 15, EstimatedHours: 4, CreatedAt: now},
			{ID: 4, Title: "English Essay – AI Ethics", Subject: "ENG102", Deadline: "2026-03-01", Priority: "medium", Completed: false, Progress: 80, EstimatedHours: 2, CreatedAt: now},
			{ID: 5, Title: "Physics Experiment Write-up", Subject: "PHY201", Deadline: "2026-03-03", Priority: "low", Completed: false, Progress: 0, EstimatedHours: 2, CreatedAt: now},
			{ID: 6, Title: "Database Design Project", Subject: "CS302", Deadline: "2026-02-20", Priority: "high", Completed: true, Progress: 100, EstimatedHours: 8, CreatedAt: now},
			{ID: 7, Title: "Calculus Quiz Prep", Subject: "MATH101", Deadline: "2026-02-19", Priority: "medium", Completed: true, Progress: 100, EstimatedHours: 2, CreatedAt: now},
		},
		NextAssignmentID: 8,

		MoodLogs: []MoodLog{
			{ID: 1, Date: "2026-02-16", Mood: "😊", MoodScore: 8, Energy: 7, Note: "Great day! Finished DS assignment and felt motivated.", Stress: 3, CreatedAt: now},
			{ID: 2, Date: "2026-02-17", Mood: "😐", MoodScore: 5, Energy: 5, Note: "Feeling a bit overwhelmed with multiple deadlines.", Stress: 7, CreatedAt: now},
			{ID: 3, Date: "2026-02-18", Mood: "😔", MoodScore: 3, Energy: 4, Note: "Didn't sleep well. Struggling to focus.", Stress: 8, CreatedAt: now},
			{ID: 4, Date: "2026-02-19", Mood: "😊", MoodScore: 7, Energy: 8, Note: "Finished the Calculus quiz prep. Feeling better!", Stress: 4, CreatedAt: now},
			{ID: 5, Date: "2026-02-20", Mood: "🤩", MoodScore: 9, Energy: 9, Note: "Submitted DB project. Relief! Had a productive gym session.", Stress: 2, CreatedAt: now},
			{ID: 6, Date: "2026-02-21", Mood: "😌", MoodScore: 6, Energy: 6, Note: "Weekend. Rested and reviewed notes lightly.", Stress: 3, CreatedAt: now},
			{ID: 7, Date: "2026-02-22", Mood: "😊", MoodScore: 7, Energy: 7, Note: "New week starts. Feeling motivated and ready.", Stress: 4, CreatedAt: now},
		},
		NextMoodID: 8,

		Habits: []Habit{
			{
				ID: 1, Name: "Study", Icon: "📚", Unit: "hours", Target: 6, Color: "#3b82f6",
				Logs: []HabitLog{
					{Date: "2026-02-16", Value: 4}, {Date: "2026-02-17", Value: 6}, {Date: "2026-02-18", Value: 3},
					{Date: "2026-02-19", Value: 7}, {Date: "2026-02-20", Value: 5}, {Date: "2026-02-21", Value: 2},
					{Date: "2026-02-22", Value: 4.5},
				},
			},
			{
				ID: 2, Name: "Exercise", Icon: "🏃", Unit: "hours", Target: 1, Color: "#10b981",
				Logs: []HabitLog{
					{Date: "2026-02-16", Value: 1}, {Date: "2026-02-17", Value: 0.5}, {Date: "2026-02-18", Value: 1.5},
					{Date: "2026-02-19", Value: 1}, {Date: "2026-02-20", Value: 0}, {Date: "2026-02-21", Value: 2},
					{Date: "2026-02-22", Value: 1},
				},
			},
			{
				ID: 3, Name: "Sleep", Icon: "😴", Unit: "hours", Target: 8, Color: "#8b5cf6",
				Logs: []HabitLog{
					{Date: "2026-02-16", Value: 7}, {Date: "2026-02-17", Value: 6.5}, {Date: "2026-02-18", Value: 6},
					{Date: "2026-02-19", Value: 7.5}, {Date: "2026-02-20", Value: 7}, {Date: "2026-02-21", Value: 8.5},
					{Date: "2026-02-22", Value: 7.5},
				},
			},
			{
				ID: 4, Name: "Breaks", Icon: "☕", Unit: "taken", Target: 4, Color: "#f59e0b",
				Logs: []HabitLog{
					{Date: "2026-02-16", Value: 3}, {Date: "2026-02-17", Value: 5}, {Date: "2026-02-18", Value: 2},
					{Date: "2026-02-19", Value: 4}, {Date: "2026-02-20", Value: 4}, {Date: "2026-02-21", Value: 6},
					{Date: "2026-02-22", Value: 3},
				},
			},
		},

		ChatMessages: []ChatMessage{WelcomeMessage()},
		NextChatID:   2,

		WeeklyPlan: nil, // null until first save
	}
}
