package domain

import "time"

// Weather recorded on a daily log.
type Weather string

const (
	WeatherSunny  Weather = "SUNNY"
	WeatherRainy  Weather = "RAINY"
	WeatherCloudy Weather = "CLOUDY"
)

// DailyLog is a journal entry written on site.
type DailyLog struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Weather   Weather   `json:"weather"`
	Images    []string  `json:"images"`
}

func (l DailyLog) GetID() string    { return l.ID }
func (l *DailyLog) SetID(id string) { l.ID = id }
