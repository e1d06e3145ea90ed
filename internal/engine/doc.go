// Package engine implements a fixed-cadence sprite engine for small
// indexed-colour displays. It contains no terminal or hardware
// dependencies: concrete displays implement Screen, concrete input
// hardware implements Device, and application entities implement Entity.
// The Manager owns the tick loop: poll input, run update hooks, sweep
// dead sprites, composite live sprites in layer order into a reusable
// frame buffer, present, and keep frame-budget bookkeeping.
package engine
