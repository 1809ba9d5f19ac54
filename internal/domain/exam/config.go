package exam

// Config holds optional constraints for an exam paper.
type Config struct {
	MaxQuestions *int // nil = every question
	Shuffle      bool // false = keep bank order
}

// DefaultConfig returns a config with no constraints.
func DefaultConfig() Config {
	return Config{
		MaxQuestions: nil,
		Shuffle:      false,
	}
}
