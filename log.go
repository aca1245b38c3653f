package pcapng

import (
	log "github.com/sirupsen/logrus"
)

// Logger is the structured logger every warning and debug trace in this
// package is written through. Warnings described by spec (truncated
// options, unknown block types, an interface's snap_len exceeding the soft
// buffer limit, an unusable timestamp resolution, statistics for an
// undefined interface, a packet referencing an unknown interface) are
// never swallowed silently and never promoted to errors; they go here
// instead. Options of a type a block's decoder does not recognise are
// skipped without a warning. Replace it to route logs elsewhere.
var Logger = log.StandardLogger()

func warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}
