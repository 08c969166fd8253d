//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/navionguy/webcalc/calc"
	"github.com/navionguy/webcalc/display"
	"github.com/navionguy/webcalc/keymap"
)

func registerCallbacks() {
	document := js.Global().Get("document")

	disp := display.New(document.Call("getElementById", "display"))
	state := calc.New(disp)

	buttons := document.Call("querySelectorAll", ".btn")
	for i := 0; i < buttons.Length(); i++ {
		button := buttons.Index(i)
		button.Call("addEventListener", "click", js.FuncOf(func(this js.Value, inputs []js.Value) interface{} {
			act, ok := keymap.FromButton(display.Classes(button), button.Get("textContent").String())
			if ok {
				keymap.Dispatch(state, act)
			}
			return nil
		}))
	}

	document.Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, inputs []js.Value) interface{} {
		event := inputs[0]

		act, ok := keymap.FromKey(event.Get("key").String())
		if !ok {
			return nil
		}

		if act.PreventDefault {
			event.Call("preventDefault")
		}
		keymap.Dispatch(state, act)
		return nil
	}))
}

func main() {
	c := make(chan struct{}, 0)
	registerCallbacks()
	<-c
}
