package mocks

import "fmt"

// MockDisplay records everything the calculator shows
// and logs, so tests can run without a browser
type MockDisplay struct {
	Shown  []string
	Logged []string
	Echo   bool // also print to stdout
}

// Show saves the text
func (md *MockDisplay) Show(text string) {
	md.Shown = append(md.Shown, text)
	if md.Echo {
		fmt.Println(text)
	}
}

// Log saves the diagnostic
func (md *MockDisplay) Log(msg string) {
	md.Logged = append(md.Logged, msg)
	if md.Echo {
		fmt.Println(msg)
	}
}

// Text returns what is on the display right now
func (md *MockDisplay) Text() string {
	if len(md.Shown) == 0 {
		return ""
	}
	return md.Shown[len(md.Shown)-1]
}
