package trainer

type (
	// Broker carries messages from other goroutines, like the MIDI driver's
	// callback, to the GUI goroutine that owns the Model. The GUI loop
	// receives from ToModel and hands each message to Model.ProcessMsg.
	Broker struct {
		ToModel  chan MsgToModel
		CloseGUI chan struct{}
	}

	// MsgToModel is a message to the model. Data is one of the message types
	// below or a func() run on the GUI goroutine.
	MsgToModel struct {
		Data any
	}

	// MIDINoteOn is sent when a key is pressed on a MIDI keyboard.
	MIDINoteOn struct {
		Key      int
		Velocity int
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:  make(chan MsgToModel, 1024),
		CloseGUI: make(chan struct{}, 1),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}
