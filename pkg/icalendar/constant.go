package icalendar

const (
	// DefaultProductID is used when Encoder.ProductID is empty.
	DefaultProductID = "-//Calendar Converter//EN"

	// Filename and ContentType describe the produced artifact.
	Filename    = "calendar.ics"
	ContentType = "text/calendar"

	floatingLayout = "20060102T150405"
	noMailAddress  = "invalid:nomail"
)
