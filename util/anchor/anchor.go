package anchor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

// Tints for the transient status line.
const (
	Plain = color.Reset
	Red   = color.FgRed
	Cyan  = color.FgCyan
)

// Anchor prints persistent lines above a single transient status line
// that in-flight work keeps rewriting.
type Anchor struct {
	mutex  sync.Mutex
	tint   *color.Color
	status string
	reader *bufio.Reader
}

// Lot is a named slot on the status line.
type Lot struct {
	anchor *Anchor
	label  string
}

func New(tint color.Attribute) *Anchor {
	return &Anchor{
		tint:   color.New(tint),
		reader: bufio.NewReader(os.Stdin),
	}
}

// Printf writes a persistent line, keeping the status line below it.
func (anchor *Anchor) Printf(format string, arguments ...interface{}) {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	anchor.wipe()
	fmt.Printf(format+"\n", arguments...)
	anchor.draw()
}

// Lot returns the named status slot, creating it on first use.
func (anchor *Anchor) Lot(label string) *Lot {
	return &Lot{anchor: anchor, label: label}
}

// Reads prompts on the status line and blocks for one line of input.
func (anchor *Anchor) Reads(prompt string) string {
	anchor.mutex.Lock()
	anchor.wipe()
	fmt.Print(prompt + " ")
	anchor.mutex.Unlock()

	line, err := anchor.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// Printf rewrites the status line for this slot.
func (lot *Lot) Printf(format string, arguments ...interface{}) *Lot {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.anchor.status = lot.label + ": " + fmt.Sprintf(format, arguments...)
	lot.anchor.draw()
	return lot
}

// Wipe clears this slot's status line.
func (lot *Lot) Wipe() {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.anchor.status = ""
}

// Close clears the slot and leaves a persistent summary line.
func (lot *Lot) Close(summary ...string) {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.anchor.status = ""
	if len(summary) > 0 {
		fmt.Printf("%s: %s\n", lot.label, strings.Join(summary, " "))
	}
}

func (anchor *Anchor) wipe() {
	if anchor.status == "" {
		return
	}
	cursor.StartOfLine()
	cursor.ClearLine()
}

func (anchor *Anchor) draw() {
	if anchor.status == "" {
		return
	}
	anchor.tint.Print(anchor.status)
}
