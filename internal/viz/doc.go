// Package viz renders lists and script traces for the terminal.
//
//   - [Slots]: one cell per buffer slot, live elements highlighted
//   - [TraceTable]: a step-by-step table of a script run
//   - [GrowthPlot]: count and capacity over the steps of a run
package viz
