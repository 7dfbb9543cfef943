// Package gitsync runs the backend side of a save sync: it turns a game's
// save directory into a git worktree, commits local changes, fast-forwards
// from the remote and pushes the result.
//
// Every run ends in one of the probe exit codes declared in models
// (ProbeCodeOK, ProbeCodeSkipped and the negative failure codes). A run that
// neither committed, pulled nor pushed anything reports ProbeCodeSkipped.
//
// Runs for the same game are serialised across processes with a file lock
// in the configured lock directory.
package gitsync
