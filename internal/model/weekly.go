package model

// WeeklyPoint is a single day of the growth chart's time series.
type WeeklyPoint struct {
	Day   string
	Score int
}
