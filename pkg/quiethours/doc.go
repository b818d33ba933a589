// Package quiethours implements the time-window math behind
// user-configured quiet hours.
//
// A Window compares wall-clock minutes since midnight and correctly
// handles ranges that span midnight (Start > End). The delivery engine
// consults the window only for notifications below high priority;
// high and critical priority notifications always bypass it.
package quiethours
