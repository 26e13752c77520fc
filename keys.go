package gofoot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyTable maps friendly key names to the ebiten keys they cover. Names
// with two entries (shift, ctrl, alt) match either side of the keyboard.
var keyTable = map[string][]ebiten.Key{
	"a": {ebiten.KeyA}, "b": {ebiten.KeyB}, "c": {ebiten.KeyC},
	"d": {ebiten.KeyD}, "e": {ebiten.KeyE}, "f": {ebiten.KeyF},
	"g": {ebiten.KeyG}, "h": {ebiten.KeyH}, "i": {ebiten.KeyI},
	"j": {ebiten.KeyJ}, "k": {ebiten.KeyK}, "l": {ebiten.KeyL},
	"m": {ebiten.KeyM}, "n": {ebiten.KeyN}, "o": {ebiten.KeyO},
	"p": {ebiten.KeyP}, "q": {ebiten.KeyQ}, "r": {ebiten.KeyR},
	"s": {ebiten.KeyS}, "t": {ebiten.KeyT}, "u": {ebiten.KeyU},
	"v": {ebiten.KeyV}, "w": {ebiten.KeyW}, "x": {ebiten.KeyX},
	"y": {ebiten.KeyY}, "z": {ebiten.KeyZ},

	"0": {ebiten.KeyDigit0}, "1": {ebiten.KeyDigit1}, "2": {ebiten.KeyDigit2},
	"3": {ebiten.KeyDigit3}, "4": {ebiten.KeyDigit4}, "5": {ebiten.KeyDigit5},
	"6": {ebiten.KeyDigit6}, "7": {ebiten.KeyDigit7}, "8": {ebiten.KeyDigit8},
	"9": {ebiten.KeyDigit9},

	"up":    {ebiten.KeyArrowUp},
	"down":  {ebiten.KeyArrowDown},
	"left":  {ebiten.KeyArrowLeft},
	"right": {ebiten.KeyArrowRight},

	"space":     {ebiten.KeySpace},
	"enter":     {ebiten.KeyEnter},
	"escape":    {ebiten.KeyEscape},
	"tab":       {ebiten.KeyTab},
	"backspace": {ebiten.KeyBackspace},
	"shift":     {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	"ctrl":      {ebiten.KeyControlLeft, ebiten.KeyControlRight},
	"alt":       {ebiten.KeyAltLeft, ebiten.KeyAltRight},
}

// IsKeyDown reports whether the named key is currently pressed. Names are
// case-insensitive; the full list comes from KeyNames. An unknown name is
// a programming error and panics, so typos surface immediately instead of
// silently never matching.
func IsKeyDown(name string) bool {
	keys, ok := keyTable[strings.ToLower(name)]
	if !ok {
		panic(fmt.Sprintf("gofoot: unknown key name %q; see gofoot.KeyNames() for the valid names", name))
	}
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// KeyNames returns every name usable with IsKeyDown, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyTable))
	for name := range keyTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
