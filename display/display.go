//go:build js && wasm

package display

import (
	"syscall/js"
)

// Display is the page element that shows the calculator buffer
type Display struct {
	elem js.Value
}

// New wraps the display element
func New(elem js.Value) *Display {
	return &Display{elem: elem}
}

// Show replaces the text in the display
func (d *Display) Show(text string) {
	d.elem.Set("textContent", text)
}

// Log sends diagnostics to the browser console
func (d *Display) Log(msg string) {
	js.Global().Get("console").Call("error", msg)
}

// Classes returns the class names on an element
func Classes(elem js.Value) []string {
	var classes []string

	list := elem.Get("classList")
	for i := 0; i < list.Length(); i++ {
		classes = append(classes, list.Index(i).String())
	}

	return classes
}
