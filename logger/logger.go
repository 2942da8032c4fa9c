package logger

import (
	"fmt"
	"io"
)

// Logger renders the step log: leveled lines plus banner-delimited
// sections around each phase of a run (init, plan, apply, ...). Output
// is ANSI-colored, the CI log viewer renders the escapes.
type Logger struct {
	Sink io.Writer

	sections []section
}

type section struct {
	title string
	level level
}

// level is the ANSI SGR color code for a log line.
type level string

const (
	levelInfo    level = "34" // blue
	levelSuccess level = "32" // green
	levelWarn    level = "33" // yellow
	levelError   level = "31" // red
)

func (l Logger) Info(message string) {
	l.write(levelInfo, message)
}

func (l Logger) Success(message string) {
	l.write(levelSuccess, message)
}

func (l Logger) Warn(message string) {
	l.write(levelWarn, message)
}

func (l Logger) Error(message string) {
	l.write(levelError, message)
}

func (l *Logger) InfoSection(title string) {
	l.open(section{title: title, level: levelInfo})
}

func (l *Logger) SuccessSection(title string) {
	l.open(section{title: title, level: levelSuccess})
}

func (l *Logger) WarnSection(title string) {
	l.open(section{title: title, level: levelWarn})
}

func (l *Logger) ErrorSection(title string) {
	l.open(section{title: title, level: levelError})
}

// EndSection closes the innermost open section. Sections nest, so a
// phase opened inside another phase restores the outer banner state.
func (l *Logger) EndSection() {
	if len(l.sections) == 0 {
		return
	}
	s := l.sections[len(l.sections)-1]
	l.sections = l.sections[:len(l.sections)-1]
	l.write(s.level, fmt.Sprintf(">>> end %s", s.title))
}

func (l *Logger) open(s section) {
	l.sections = append(l.sections, s)
	l.write(s.level, fmt.Sprintf(">>> %s", s.title))
}

func (l Logger) write(lv level, message string) {
	fmt.Fprintf(l.Sink, "\033[%sm%s\033[0m\n", lv, message)
}
