// Package cmd implements the filelog command line tool.
package cmd
