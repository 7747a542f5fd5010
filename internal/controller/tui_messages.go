package controller

// Message types.
type progressMsg struct {
	index int
	total int
	path  string
	sites int
}

type outcomeMsg struct {
	path    string
	outcome string
	detail  string
}

type reportMsg struct {
	kept     int
	reverted int
	failed   int
	skipped  int
}

type quitMsg struct{}
