package extract

// Config holds extractor tuning knobs.
type Config struct {
	// PassageWindow is the number of lines taken as the passage when no
	// question marker follows the passage start. Default: 20.
	PassageWindow int

	// InstructionMaxLen is the exclusive upper bound, in runes, on the
	// length of a line accepted as the instruction. Default: 200.
	InstructionMaxLen int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PassageWindow:     20,
		InstructionMaxLen: 200,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PassageWindow <= 0 {
		c.PassageWindow = d.PassageWindow
	}
	if c.InstructionMaxLen <= 0 {
		c.InstructionMaxLen = d.InstructionMaxLen
	}
	return c
}
