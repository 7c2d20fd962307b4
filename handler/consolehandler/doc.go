// Package consolehandler provides the console sink, which prints each
// rendered entry to stdout (or any io.Writer). The Logger only routes
// Critical, Error and Debug entries here, and only in console output
// mode.
package consolehandler
