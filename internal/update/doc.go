package update

// Package update implements the update-and-self-replace subsystem: a
// single-use download worker streaming the artifact with per-chunk progress,
// a manager fanning worker notifications out to observers, and the handoff
// that replaces the running executable after process exit.
