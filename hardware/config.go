package hardware

//go:generate go tool stringer -linecomment -type=DivideMethod

// DivideMethod selects the fate of the parent on a successful divide.
type DivideMethod int

const (
	DIVIDE_METHOD_OFFSPRING = DivideMethod(iota) // offspring
	DIVIDE_METHOD_SPLIT                          // split
	DIVIDE_METHOD_BIRTH                          // birth
)

// MarshalText renders the divide method by name.
func (method DivideMethod) MarshalText() ([]byte, error) {
	return []byte(method.String()), nil
}

// UnmarshalText parses a divide method name.
func (method *DivideMethod) UnmarshalText(text []byte) error {
	for value := range DIVIDE_METHOD_BIRTH + 1 {
		if value.String() == string(text) {
			*method = value
			return nil
		}
	}
	return ErrDivideMethod(text)
}

// InstCost is the execution cost of a single opcode.
type InstCost struct {
	Cost     int     // Attempts needed per execution.
	FTCost   int     // Extra attempts needed on the first execution.
	ProbFail float64 // Probability a paid execution is skipped.
}

// Config is the static configuration of a Hardware.
type Config struct {
	MaxThreads      int          // Maximum number of threads, at most MAX_THREAD_CAPACITY.
	ThreadSlicing   float64      // Extra steps per tick for each thread beyond the first.
	DivideMethod    DivideMethod // Parent fate on divide.
	MinCreatureSize int          // Smallest offspring allowed by mutations.
	MaxCreatureSize int          // Largest offspring allowed by mutations.
	MaxLabelExeSize int          // Leading label positions flagged as executed.
	MinInjectSize   int          // Smallest injected payload.
	InstCost        []InstCost   // Per-opcode costs.
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxThreads:      4,
		ThreadSlicing:   0,
		DivideMethod:    DIVIDE_METHOD_SPLIT,
		MinCreatureSize: 8,
		MaxCreatureSize: 2048,
		MaxLabelExeSize: 1,
		MinInjectSize:   8,
	}
}

// Cost returns the cost of an opcode.
func (cfg *Config) Cost(op int) (cost InstCost) {
	if op >= 0 && op < len(cfg.InstCost) {
		cost = cfg.InstCost[op]
	}
	return
}

// SetCost sets the cost of an opcode.
func (cfg *Config) SetCost(op int, cost InstCost) {
	for len(cfg.InstCost) <= op {
		cfg.InstCost = append(cfg.InstCost, InstCost{})
	}
	cfg.InstCost[op] = cost
}
