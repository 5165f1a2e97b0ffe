package grid

// System is the aggregate container for validated components: an
// insertion-ordered set keyed by unique name. A System confines to one
// goroutine; independent systems may be built concurrently.
type System struct {
	components map[string]Component
	order      []string
}

// NewSystem creates an empty system
func NewSystem() *System {
	return &System{components: make(map[string]Component)}
}

// Add validates a component and inserts it, rejecting duplicate names
func (s *System) Add(c Component) error {
	if err := c.Validate(); err != nil {
		return err
	}
	name := c.GetName()
	if _, exists := s.components[name]; exists {
		return &ValidationError{Component: "System", Field: "name", Constraint: name + " already present", Err: ErrDuplicateName}
	}
	s.components[name] = c
	s.order = append(s.order, name)
	return nil
}

// Get returns a component by name
func (s *System) Get(name string) (Component, bool) {
	c, ok := s.components[name]
	return c, ok
}

// Components returns all components in insertion order
func (s *System) Components() []Component {
	out := make([]Component, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.components[name])
	}
	return out
}

// Branches returns the branch components in insertion order
func (s *System) Branches() []Branch {
	var out []Branch
	for _, name := range s.order {
		if b, ok := s.components[name].(Branch); ok {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of components
func (s *System) Len() int {
	return len(s.order)
}
