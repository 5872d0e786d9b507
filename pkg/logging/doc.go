// Package logging provides structured logging for layerdoc, built on Go's
// standard slog package.
//
// Every log entry carries a subsystem identifier alongside the level,
// message and optional error, so output from the manifest loader, the
// document generator and the editing session can be told apart:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("ManifestLoader", "loaded %s with %d settings", path, count)
//	logging.Error("DocGenerator", err, "failed to write %s", target)
package logging
