// Package sink abstracts the host platform's notification surface
// behind a capability interface: permission query and request, the
// display primitive with its options bag, and the audio/vibration
// side channels.
//
// MemorySink is a fully scriptable fake for tests and headless
// sessions. DesktopSink bridges to the operating system's notification
// daemon through beeep; OS daemons expose no click feedback, so its
// handles are inert.
package sink
