package domain

// Business validation constants
const (
	MinTimeIntervalMinutes = 0
	MaxTimeIntervalMinutes = 525600 // 1 year
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD H:MM, hour may be unpadded on input
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
)
