package models

import "time"

// DailyLog is a row of the daily_logs table.
type DailyLog struct {
	ID        string    `db:"id"`
	ProjectID string    `db:"project_id"`
	AuthorID  string    `db:"author_id"`
	Content   string    `db:"content"`
	Date      time.Time `db:"date"`
	Weather   string    `db:"weather"`
	Images    []string  `db:"images"`
}
