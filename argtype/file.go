package argtype

import (
	"fmt"
	"os"

	"github.com/danhart/clarg"
)

// File is a 1..1 argument type that parses a single value token as a
// filesystem path, raising FileNotFound if MustExist is set and the
// path doesn't resolve.
type File struct {
	clarg.BaseType[string]

	// MustExist requires the path to exist on disk at parse time.
	MustExist bool
}

// NewFile builds a required-arity File type. Set MustExist on the
// returned value before parsing to require the path to exist.
func NewFile() *File {
	return &File{BaseType: clarg.NewBaseType[string](clarg.Exactly(1))}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *File) ParseArgValues(tokens []clarg.Token) {
	if !t.CheckTupleArity(tokens) {
		return
	}

	path := tokens[0].Text

	if t.MustExist {
		if _, err := os.Stat(path); err != nil {
			t.AddErrorKind(clarg.KindFileNotFound, fmt.Sprintf("%q does not exist", path), 0, clarg.LevelError)
			return
		}
	}

	t.SetValue(path)
}
