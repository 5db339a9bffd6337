package model

// DefaultSubject is the subject line of the summary email
const DefaultSubject = "Daily Helpdesk Ticket Summary"

// Report is a rendered summary ready to be delivered
type Report struct {
	Subject string
	HTML    string
	Text    string
	Summary *Summary
}
