// Package resize implements the column resize gesture.
//
// A gesture starts with a primary press or a touch on the separator of a
// resizable column. While it runs, every move computes a new width from the
// offset between the press and the column edge, clamps it to the column
// bounds, and writes it straight to the Layout so the rendering follows the
// pointer without rebuilding the column registry. The width is committed to
// the registry once, when the gesture ends. The stop and width-changed
// notifications are deferred to the next scheduler tick, replacing any that
// are still pending.
//
// A move whose held-buttons mask is zero ends the gesture, for hosts that
// lost the release event.
package resize
