package model

// Publication represents an academic paper. Citation is a pre-formatted
// citation string; Position breaks ties within a year for custom ordering.
type Publication struct {
	ID       int64
	Title    string
	Authors  string
	Journal  string
	Year     int
	DOI      string
	PDFURL   string
	Abstract string
	Citation string
	Position int
}
