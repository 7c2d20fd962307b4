// Package tail reads the last N lines of a log.
//
// Lines makes a single sequential pass and keeps only a ring of N lines,
// so memory is O(N × average line length) regardless of file size:
//
//  1. The first N lines fill the ring in order.
//  2. Each later line overwrites the slot after the newest one,
//     wrapping at N.
//  3. At end of input the ring is either already in order (the newest
//     line sits in the last slot) or is read out as the segment after
//     the newest line followed by the segment up to it.
//
// Counts are physical lines. A record whose message spans several lines
// (a stack trace, a setup banner) counts once per line.
//
// Lines have no length limit. The ring starts small and grows while it
// fills, so a count far beyond the file's length costs nothing extra.
package tail
