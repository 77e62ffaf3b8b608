package main

import "log"

// Verbosity ladder for the -v option: warnings always print, everything else
// is opt-in.
const (
	levelWarn = iota
	levelInfo
	levelDebug
	levelTrace
)

// A thin level filter over the standard logger; messages go to stderr and
// never mix with the emitted machine code on stdout or the output file.
type logger struct {
	level int
}

func newLogger(level int) *logger {
	log.SetFlags(0)
	return &logger{level: level}
}

func (l *logger) warnf(format string, args ...interface{}) {
	l.printf(levelWarn, "WARN: "+format, args...)
}

func (l *logger) infof(format string, args ...interface{}) {
	l.printf(levelInfo, "INFO: "+format, args...)
}

func (l *logger) debugf(format string, args ...interface{}) {
	l.printf(levelDebug, "DEBUG: "+format, args...)
}

func (l *logger) tracef(format string, args ...interface{}) {
	l.printf(levelTrace, "TRACE: "+format, args...)
}

func (l *logger) printf(level int, format string, args ...interface{}) {
	if l.level >= level {
		log.Printf(format, args...)
	}
}
