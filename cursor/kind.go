package cursor

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies the token the cursor is positioned on.
type Kind uint8

const (
	None Kind = iota
	BeginObject
	EndObject
	BeginArray
	EndArray
	PropertyName
	String
	Number
	True
	False
	Null
	EOF
)
