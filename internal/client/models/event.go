// Package models defines the wire types exchanged with the attendance
// service. Field names follow the server's JSON contract.
package models

import "time"

// ISODate is the date layout used throughout the API ("YYYY-MM-DD").
const ISODate = "2006-01-02"

// Event describes a tracked event. ID and Owner are assigned server-side
// and are empty on creation. Attendance maps an ISO date to the emails of
// participants present that day.
type Event struct {
	ID              string              `json:"id,omitempty"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	Owner           string              `json:"owner,omitempty"`
	RegisteredUsers []string            `json:"registeredUsers"`
	Attendance      map[string][]string `json:"attendance,omitempty"`
}

// Days returns every date of the event in ISO form, inclusive of both
// endpoints. Malformed dates or an end before the start yield nil.
func (e Event) Days() []string {
	start, err := time.Parse(ISODate, e.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(ISODate, e.EndDate)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return nil
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(ISODate))
	}
	return days
}

// PresentOn returns the participants recorded as present on the given
// ISO date.
func (e Event) PresentOn(day string) []string {
	if e.Attendance == nil {
		return nil
	}
	return e.Attendance[day]
}
