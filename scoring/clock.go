package scoring

import (
	"strconv"
	"time"
)

//**********************************************************
// day-type and time-slot extraction
//**********************************************************

// GetDayType maps an epoch-seconds timestamp onto the congestion-table
// day key: "weekday", "sat" or "sun".
func GetDayType(timestamp float64) string {
	t := time.Unix(int64(timestamp), 0).Local()
	switch t.Weekday() {
	case time.Saturday:
		return "sat"
	case time.Sunday:
		return "sun"
	default:
		return "weekday"
	}
}

// GetTimeSlot maps an epoch-seconds timestamp onto the half-hour slot
// key, e.g. 08:17 -> "t_480".
func GetTimeSlot(timestamp float64) string {
	t := time.Unix(int64(timestamp), 0).Local()
	minutes := t.Hour()*60 + t.Minute()
	slot := (minutes / 30) * 30
	return "t_" + strconv.Itoa(slot)
}
