package value

// Callable is the capability set every function-like value implements:
// user-defined closures, built-in (native-backed) functions, and bound-cell
// getters/setters.
type Callable interface {
	Call(args []Value) (Value, error)
	DebugDump() string
}

// Function is the Value wrapper around a Callable reference. Function
// equality is by identity of the underlying Callable, never structural.
type Function struct {
	Callable Callable
}

// NewFunction wraps a Callable as a Value.
func NewFunction(c Callable) *Function {
	return &Function{Callable: c}
}

func (f *Function) Kind() Kind       { return KindFunction }
func (f *Function) Truthy() bool     { return true }
func (f *Function) ToInternalString(bool) string {
	return f.Callable.DebugDump()
}

// SameCallable reports whether two Functions share the same underlying
// Callable identity, Frost's identity-equality rule for Function values.
func (f *Function) SameCallable(other *Function) bool {
	return f.Callable == other.Callable
}
