package store

// Session status values persisted on practice session rows.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// Selection modes persisted on practice session rows.
const (
	ModePractice = "practice"
	ModeSpeedrun = "speedrun"
)

// Question types persisted on question rows.
const (
	QuestionSingle    = "single"
	QuestionChooseN   = "choose_n"
	QuestionSelectAll = "select_all"
)

// Difficulty labels persisted on question rows.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)
