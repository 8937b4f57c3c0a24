package objinfo

// Object is one indexed object exposed by a content domain.
type Object struct {
	Name        string
	DisplayName string
	Type        string
	Doc         string // docname of the page the object is rendered on
	Anchor      string // in-page fragment identifier
	Priority    int
}

// Domain is a registry of indexed objects of one kind, exposed by the host
// build system.
type Domain interface {
	Name() string
	Objects() []Object
	// TypeName returns the human-readable label for an object type.
	TypeName(objType string) string
}

// SynopsisProvider is implemented by domains that can supply a short
// description of an object for tooltips.
type SynopsisProvider interface {
	ObjectSynopsis(objType, name string) string
}
