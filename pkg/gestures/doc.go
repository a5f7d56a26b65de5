// Package gestures provides a declarative multi-touch gesture recognition
// engine. Clients describe gestures as ordered sequences of actions
// (finger-down/up, directional moves, rotations, pinches, dwell delays,
// targeted hits) against an Engine, then drive a Tracker bound to that
// engine with timestamped touch and move events. The tracker reports which
// gestures are making progress and which have completed.
//
// The engine owns no clock and no input source: callers supply timestamps
// and raw touch/move deltas, typically translated from platform input
// events upstream (compositor, kernel evdev/libinput, or a custom
// dispatcher). The engine does not dispatch actions on completion either;
// callers poll GestureProgress or drain completed gestures and react
// themselves.
package gestures
