// Package progress defines the progress reporting primitives shared by the
// numeric operations and the presentation layers.
package progress

// Update carries a normalized progress value for one running operation.
type Update struct {
	// OperationIndex identifies which operation the update belongs to.
	OperationIndex int
	// Value is the normalized progress in [0.0, 1.0].
	Value float64
}

// Callback receives normalized progress values from a computation loop.
type Callback func(value float64)

// NoOp is a Callback that discards all updates.
func NoOp(float64) {}

// ChannelCallback returns a Callback that forwards updates for the operation
// at index to ch. Sends are non-blocking: if the channel buffer is full the
// update is dropped rather than stalling the computation.
func ChannelCallback(ch chan<- Update, index int) Callback {
	return func(value float64) {
		select {
		case ch <- Update{OperationIndex: index, Value: value}:
		default:
		}
	}
}

// Clamp bounds a progress value to [0.0, 1.0].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
