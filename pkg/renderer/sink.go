package renderer

// Sink receives one Command per pixel at the end of every frame.
// It owns aggregation into whatever displays the pixels.
type Sink interface {
	Put(cmd Command) error
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(cmd Command) error

// Put calls f(cmd)
func (f SinkFunc) Put(cmd Command) error {
	return f(cmd)
}

// ChanSink sends commands to a channel. The receiver must drain it
// concurrently or the channel must be buffered for a full frame.
type ChanSink chan<- Command

// Put sends cmd on the channel
func (c ChanSink) Put(cmd Command) error {
	c <- cmd
	return nil
}

// Discard is a Sink that drops every command
var Discard Sink = SinkFunc(func(Command) error { return nil })
