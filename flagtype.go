package clarg

// flagType is the ArgumentType behind every command's built-in "help"
// argument: it takes no value tokens and is true if and only if the
// argument was used at all.
type flagType struct {
	BaseType[bool]
}

func newFlagType() *flagType {
	t := &flagType{BaseType: NewBaseType[bool](Exactly(0))}
	t.SetDefault(false)

	return t
}

func (t *flagType) ParseArgValues(tokens []Token) {
	t.SetValue(true)
}
