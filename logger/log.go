// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e Entry) String() string {
	if e.repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.Tag, e.Detail, e.repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Detail)
}

// Logger is a bounded log of entries. Most packages will use the central
// logger via the package level functions but an instance can be created with
// NewLogger() when a private log is needed.
type Logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry

	// entries are written to echo as they are logged if echo is not nil
	echo     io.Writer
	colorize bool
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

func detailString(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

// Log adds an entry to the log if permission allows it. The detail argument
// can be a string, an error, a fmt.Stringer or any other value that can be
// formatted with the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}
	l.log(tag, detailString(detail))
}

// Logf is like Log but the detail is formatted with the supplied arguments.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// newline characters would break the one entry per line output
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]

		if len(l.entries) > l.maxEntries {
			l.entries = l.entries[len(l.entries)-l.maxEntries:]
			e = &l.entries[len(l.entries)-1]
		}
	}

	if l.echo != nil {
		l.writeEntry(l.echo, *e)
	}
}

func (l *Logger) writeEntry(output io.Writer, e Entry) {
	if l.colorize {
		io.WriteString(output, ansi.Color(e.Tag, "cyan+b"))
		io.WriteString(output, ": ")
		s := e.Detail
		if e.repeated > 0 {
			s = fmt.Sprintf("%s %s", s, ansi.Color(fmt.Sprintf("(repeat x%d)", e.repeated+1), "black+h"))
		}
		io.WriteString(output, s)
		io.WriteString(output, "\n")
		return
	}
	io.WriteString(output, e.String())
	io.WriteString(output, "\n")
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// Tail writes the last N entries to io.Writer. Asking for more entries than
// there are in the log is not an error.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// SetEcho prints entries to io.Writer as they are added to the log. Use a
// nil output to turn echoing off. If writeRecent is true then the current
// contents of the log are written before any new entries.
//
// Output is colourised if the output is a terminal.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	l.colorize = false
	if f, ok := output.(*os.File); ok {
		l.colorize = isatty.IsTerminal(f.Fd())
	}

	if output != nil && writeRecent {
		for _, e := range l.entries {
			l.writeEntry(output, e)
		}
	}
}

// Len returns the number of entries in the log.
func (l *Logger) Len() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.entries)
}
