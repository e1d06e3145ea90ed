package engine

// Screen is the display contract consumed by the Manager. Size is fixed
// for the lifetime of the contract; the Manager sizes its frame buffer
// to it once. Present pushes a composited frame to the physical or
// simulated output and may block for the duration of the transfer;
// it is the dominant blocking point in the loop. A Present failure is
// fatal: the Manager performs no retry and Run returns the error.
type Screen interface {
	Size() (width, height int)
	Present(f *Frame) error
}
