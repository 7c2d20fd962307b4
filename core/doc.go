// Package core defines the shared types used across filelog.
//
// Level orders severities from Critical (1) to Debug (5). A message is
// persisted when its rank is less than or equal to the configured
// minimum, so a more severe message is filtered less. Critical, Error and
// Debug messages are additionally echoed to the debug sink (see
// Level.Echoes), and to the console when OutputMode is OutputConsole.
//
// Entry is the unrendered record handed to handlers. Entries are pooled
// via sync.Pool; callers get one with GetEntry and return it with
// PutEntry once every handler has consumed it.
//
// The coarse clock caches time.Now on a ticker. Log lines are rendered
// with second resolution, so a Logger may use CoarseNow as its clock.
package core
