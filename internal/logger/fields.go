package logger

// Standard field names for structured logging.
const (
	FieldDataset = "dataset"
	FieldFile    = "file"
	FieldLine    = "line"
	FieldSeries  = "series"
	FieldGoal    = "goal"
	FieldTitle   = "title"
	FieldDate    = "date"
	FieldEndDate = "end_date"
	FieldCount   = "count"
	FieldTotal   = "total"
	FieldSpeed   = "speed"
	FieldError   = "error"
)
