package cli

import "github.com/spf13/pflag"

// enumFlag adapts a parse function into a pflag.Value so that invalid
// names are rejected at flag-parse time with the parser's own error
// message.
type enumFlag[T ~string] struct {
	target   *T
	parse    func(string) (T, error)
	typeName string
}

var _ pflag.Value = (*enumFlag[string])(nil)

func newEnumFlag[T ~string](target *T, def T, parse func(string) (T, error), typeName string) *enumFlag[T] {
	*target = def
	return &enumFlag[T]{target: target, parse: parse, typeName: typeName}
}

func (f *enumFlag[T]) String() string { return string(*f.target) }

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.target = v
	return nil
}

func (f *enumFlag[T]) Type() string { return f.typeName }
