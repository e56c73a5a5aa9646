package numeric

// OperationFactory resolves operations by slug and enumerates the registry.
type OperationFactory interface {
	// Get returns the operation registered under slug.
	Get(slug string) (Operation, bool)
	// List returns the registered slugs in stable display order.
	List() []string
	// GetAll returns every registered operation in stable display order.
	GetAll() []Operation
}

// defaultFactory is the built-in registry holding the five operations.
type defaultFactory struct {
	ops []Operation
}

// NewDefaultFactory returns the standard operation registry.
func NewDefaultFactory() OperationFactory {
	return &defaultFactory{
		ops: []Operation{
			FactorialOp{},
			PrimalityOp{},
			SequenceOp{},
			TermOp{},
			PrimeScanOp{},
		},
	}
}

func (f *defaultFactory) Get(slug string) (Operation, bool) {
	for _, op := range f.ops {
		if op.Slug() == slug {
			return op, true
		}
	}
	return nil, false
}

func (f *defaultFactory) List() []string {
	slugs := make([]string, len(f.ops))
	for i, op := range f.ops {
		slugs[i] = op.Slug()
	}
	return slugs
}

func (f *defaultFactory) GetAll() []Operation {
	out := make([]Operation, len(f.ops))
	copy(out, f.ops)
	return out
}
