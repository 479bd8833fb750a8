// Package trace tracks the lifecycle of guarded resources for debugging and
// leak reporting. Wrapping a resource with Track registers it in a Tracker
// and returns it guarded, decorated so that destruction notifies the
// tracker; whatever is still live when the program expects quiescence is a
// leak candidate.
//
// Key constructs:
// - Tracker: live-set registry with observer fan-out and zap debug logging
// - Track/TrackAlloc: register a resource and return it already guarded
// - Entry: per-resource identity (uuid, kind, creation time)
// - Logger/SetLogger: package logger, no-op by default
//
// Tracking is opt-in; the guard core itself stays silent.
package trace
