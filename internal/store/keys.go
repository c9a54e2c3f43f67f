package store

const (
	KeyNotes     = "dayspark_notes"
	KeyQuickLogs = "dayspark_quickLogs"
	KeyPhotos    = "dayspark_photos"
	KeySchedule  = "dayspark_schedule"
	KeyTasks     = "dayspark_tasks"
	KeyMoods     = "dayspark_moods"
	KeyStreak    = "dayspark_streak"
	KeySettings  = "dayspark_settings"
)

// Keys written by earlier versions of the app, imported once by MigrateLegacy.
const (
	LegacyKeyNotes    = "notes"
	LegacyKeySchedule = "schedule"
	LegacyKeyMoods    = "moods"
)

var AllKeys = []string{
	KeyNotes,
	KeyQuickLogs,
	KeyPhotos,
	KeySchedule,
	KeyTasks,
	KeyMoods,
	KeyStreak,
	KeySettings,
}

var LegacyKeys = []string{
	LegacyKeyNotes,
	LegacyKeySchedule,
	LegacyKeyMoods,
}
