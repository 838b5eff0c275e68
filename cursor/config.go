package cursor

// DefaultMaxDepth bounds object and array nesting.
const DefaultMaxDepth = 10000

type UnknownFieldPolicy int

const (
	IgnoreUnknown UnknownFieldPolicy = iota
	ErrorOnUnknown
)

type NullPolicy int

const (
	StrictNulls NullPolicy = iota
	CompatNulls
)

type MissingFieldPolicy int

const (
	RequireFields MissingFieldPolicy = iota
	DefaultMissing
)

type DuplicateKeyPolicy int

const (
	LastWins DuplicateKeyPolicy = iota
	ErrorOnDuplicate
)

// Config controls how converters react to input that is valid JSON but does
// not fit the target shape exactly.
type Config struct {
	UnknownFieldPolicy UnknownFieldPolicy
	NullPolicy         NullPolicy
	MissingFieldPolicy MissingFieldPolicy
	DuplicateKeyPolicy DuplicateKeyPolicy
	MaxDepth           int
}
