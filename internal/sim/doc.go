// Package sim implements the bead-on-a-parabola simulation core.
//
// The package splits into four pieces:
//
//   - [Step]: one semi-implicit Euler sub-step along the track
//   - [Ledger]: potential/kinetic/thermal energy accounting against a
//     conservation baseline
//   - [Controller]: the idle/running/dragging state machine and the
//     per-frame driver
//   - [Viewport]: the screen transform supplied by the renderer
//
// The core is frame-driven and single-threaded: a renderer calls
// [Controller.AdvanceFrame] with elapsed wall time and reads back
// state and energy snapshots. There are no callbacks and no clocks, so
// the whole core is testable with synthetic time deltas.
package sim
