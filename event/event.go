package event

// Type identifies the source of the message
type Type int

const (
	Key           Type = iota // Raw key string from the UI, resolved by the session
	Press                     // Calculator key label ("0".."9", ".", "+", "-", "X", "/", "=")
	SystemControl             // Lifecycle actions
	AsyncResult               // Work completed off the session loop
)

// Control action constants
const (
	ActionQuit       = "quit"
	ActionReload     = "reload"
	ActionLoadScript = "load_script"
	ActionYank       = "yank"
)

// ControlOp contains control operation details
type ControlOp struct {
	Action     string // Use Action* constants
	ScriptPath string
}

// Event is the universal packet sent to the session loop
type Event struct {
	Type     Type
	Payload  string    // Key string or key label
	Callback func()    // For AsyncResult
	Control  ControlOp // For SystemControl events
}

// NewKey wraps a raw key string.
func NewKey(key string) Event {
	return Event{Type: Key, Payload: key}
}

// NewPress wraps a calculator key label.
func NewPress(label string) Event {
	return Event{Type: Press, Payload: label}
}

// NewLoadScript asks the session to run the Lua file at path.
func NewLoadScript(path string) Event {
	return Event{Type: SystemControl, Control: ControlOp{Action: ActionLoadScript, ScriptPath: path}}
}

// NewControl wraps a lifecycle action.
func NewControl(action string) Event {
	return Event{Type: SystemControl, Control: ControlOp{Action: action}}
}
