package port

// DisplayEnvironment reports whether an interactive display is attached.
// Without one, theme state is kept in memory only and nothing is applied.
type DisplayEnvironment interface {
	Available() bool
}

// DisplayFunc adapts a plain function to DisplayEnvironment.
type DisplayFunc func() bool

// Available implements DisplayEnvironment.
func (f DisplayFunc) Available() bool {
	return f()
}

// DisplayDiagnostics is a DisplayEnvironment that can explain its answer.
type DisplayDiagnostics interface {
	DisplayEnvironment
	Reason() string
}
