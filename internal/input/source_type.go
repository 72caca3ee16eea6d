package input

// Handle is an opaque reference to a resolved type.
type Handle interface {
	QualifiedName() string
}

// Usage records why a type was discovered, e.g. "parameter req of func
// example.com/shop/api.CreateOrder". Member names the function or field the
// type was found through and is informational only.
type Usage struct {
	Context string
	Member  string
}

// SourceType is one type selected for generation. It cannot be modified after
// construction.
type SourceType struct {
	handle Handle
	usage  *Usage
}

// NewSourceType returns a SourceType for a directly named or pattern matched
// type.
func NewSourceType(h Handle) SourceType {
	return SourceType{handle: h}
}

// NewSourceTypeWithUsage returns a SourceType discovered through a relation to
// another declaration.
func NewSourceTypeWithUsage(h Handle, context, member string) SourceType {
	return SourceType{handle: h, usage: &Usage{Context: context, Member: member}}
}

// Handle returns the resolved type.
func (s SourceType) Handle() Handle { return s.handle }

// Name returns the qualified name of the resolved type.
func (s SourceType) Name() string {
	if s.handle == nil {
		return ""
	}
	return s.handle.QualifiedName()
}

// Usage returns a copy of the usage context, or nil when the type was named
// directly or matched by pattern.
func (s SourceType) Usage() *Usage {
	if s.usage == nil {
		return nil
	}
	u := *s.usage
	return &u
}

func (s SourceType) String() string {
	if s.usage == nil {
		return s.Name()
	}
	return s.Name() + " (" + s.usage.Context + ")"
}
