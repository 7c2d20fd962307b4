// Package logger is the public API of filelog. Most users only need to
// import this package.
//
// A Logger appends one line per message to a text file:
//
//	[2026-10-18 14:32:15] [Error] payment service unreachable
//
// Levels rank from Critical (1) to Debug (5). A message reaches the file
// when its rank is at most the configured minimum, so with the default
// minimum of Info, Warning and Debug messages are not persisted.
// Independently of that filter, Critical, Error and Debug messages are
// echoed to the debug sink (a zap logger) and, in OutputConsole mode, to
// stdout.
//
// The file is opened and closed on every write. A failed append is
// retried a bounded number of times; the final error is returned from
// Log and a Critical line describing it goes to the echo sinks.
//
// The package initializes a default Logger (log.txt in the working
// directory, InfoLevel, no console output) in init(). The package-level
// functions delegate to it, so simple programs can log without any
// setup:
//
//	logger.Info("ready")
//
// Setup reconfigures a Logger, removes the old file at the target path
// and writes a banner:
//
//	err := logger.Setup(logger.Config{
//	    FileName: "app.log",
//	    FilePath: "/var/log/app",
//	    Level:    logger.DebugLevel,
//	    Output:   logger.OutputConsole,
//	})
//
// For an independent instance, use the Builder:
//
//	log, err := logger.NewBuilder().
//	    WithFile(dir, "worker.log").
//	    WithLevel(logger.ErrorLevel).
//	    WithZap(zapLogger).
//	    Build()
//
// Read(0) returns the whole file; Read(n) returns its last n lines.
// Read swallows errors (they are logged at Critical); Tail and ReadAll
// return them.
//
// WriteError never exits the process. With ForceCloseOnError it returns
// an *ExitError and the host decides; Fatal is the explicit opt-in that
// exits.
package logger
