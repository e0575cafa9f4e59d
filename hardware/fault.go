package hardware

//go:generate go tool stringer -linecomment -type=FaultLocation,FaultKind

// FaultLocation identifies the subsystem reporting a runtime fault.
type FaultLocation int

const (
	FAULT_LOC_MATH        = FaultLocation(iota) // math
	FAULT_LOC_THREAD_FORK                       // thread-fork
	FAULT_LOC_THREAD_KILL                       // thread-kill
	FAULT_LOC_INJECT                            // inject
	FAULT_LOC_DIVIDE                            // divide
)

// FaultKind classifies a runtime fault.
type FaultKind int

const (
	FAULT_TYPE_ERROR = FaultKind(iota) // error
	FAULT_TYPE_FORK                    // fork
	FAULT_TYPE_KILL                    // kill
)
