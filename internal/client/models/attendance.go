package models

// AttendanceRequest is the structured form of an attendance mark. Scanned
// QR payloads are forwarded to the server verbatim instead; this type is
// for callers that build the payload locally.
type AttendanceRequest struct {
	EventID          string `json:"eventId"`
	Date             string `json:"date"`
	ParticipantEmail string `json:"participantEmail"`
}

// AttendanceResponse is the server's reply to an attendance mark.
type AttendanceResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}
