package ast

// Annotation keys every service carries.
const (
	AnnotationBasePath           = "BasePath"
	AnnotationSourceInterface    = "Source:interface"
	AnnotationServiceDescription = "Service:description"
)

// DefaultServiceAnnotations returns the annotations seeded into a new service,
// in the order they are appended.
func DefaultServiceAnnotations() []Annotation {
	return []Annotation{
		{Key: AnnotationBasePath, Value: "/"},
		{Key: AnnotationSourceInterface, Value: ""},
		{Key: AnnotationServiceDescription, Value: ""},
	}
}

// ServiceDefinitionArgs are the optional initial values of a service.
type ServiceDefinitionArgs struct {
	ServiceName            *string
	Annotations            []Annotation
	ResourceDefinitions    []*ResourceDefinition
	VariableDeclarations   []*VariableDeclaration
	ConnectionDeclarations []*ConnectorDeclaration
}

// ServiceDefinition is a service declaration. It may contain resource
// definitions, variable declarations and connector declarations.
type ServiceDefinition struct {
	node
	body

	serviceName         *string
	annotations         *Annotations
	resourceDefinitions []*ResourceDefinition
}

// NewServiceDefinition creates a service from args. Caller annotations come
// first; any of DefaultServiceAnnotations whose key is missing is appended
// after them.
func NewServiceDefinition(args ServiceDefinitionArgs) *ServiceDefinition {
	s := &ServiceDefinition{
		node:        newNode(KindService),
		annotations: NewAnnotations(args.Annotations...),
	}
	if args.ServiceName != nil {
		s.serviceName = Ptr(*args.ServiceName)
	}
	for _, d := range DefaultServiceAnnotations() {
		s.annotations.SetDefault(d.Key, d.Value)
	}

	s.resourceDefinitions = uniqueNodes(orEmpty(args.ResourceDefinitions))
	s.variableDeclarations = uniqueNodes(orEmpty(args.VariableDeclarations))
	s.connectionDeclarations = uniqueNodes(orEmpty(args.ConnectionDeclarations))
	adopt(s, nil, s.resourceDefinitions)
	adopt(s, nil, s.variableDeclarations)
	adopt(s, nil, s.connectionDeclarations)
	return s
}

// ServiceName returns the name and whether one has been assigned.
func (s *ServiceDefinition) ServiceName() (string, bool) {
	if s.serviceName == nil {
		return "", false
	}
	return *s.serviceName, true
}

// SetServiceName assigns the name. A nil name leaves it unchanged.
func (s *ServiceDefinition) SetServiceName(name *string) {
	if name == nil {
		return
	}
	s.serviceName = Ptr(*name)
}

func (s *ServiceDefinition) Annotations() *Annotations {
	return s.annotations
}

// AddAnnotation updates the value of key in place, or appends a new entry.
func (s *ServiceDefinition) AddAnnotation(key, value string) {
	if s.annotations == nil {
		s.annotations = &Annotations{}
	}
	s.annotations.Set(key, value)
}

func (s *ServiceDefinition) ResourceDefinitions() []*ResourceDefinition {
	return s.resourceDefinitions
}

// SetResourceDefinitions replaces the resources. A nil slice is ignored and
// repeated entries of one resource are kept once.
func (s *ServiceDefinition) SetResourceDefinitions(defs []*ResourceDefinition) {
	if defs == nil {
		return
	}
	defs = uniqueNodes(defs)
	adopt(s, s.resourceDefinitions, defs)
	s.resourceDefinitions = defs
}

// SetVariableDeclarations replaces the variables. A nil slice is ignored.
func (s *ServiceDefinition) SetVariableDeclarations(decls []*VariableDeclaration) {
	if decls == nil {
		return
	}
	decls = uniqueNodes(decls)
	adopt(s, s.variableDeclarations, decls)
	s.variableDeclarations = decls
}

// SetConnectionDeclarations replaces the connectors. A nil slice is ignored.
func (s *ServiceDefinition) SetConnectionDeclarations(decls []*ConnectorDeclaration) {
	if decls == nil {
		return
	}
	decls = uniqueNodes(decls)
	adopt(s, s.connectionDeclarations, decls)
	s.connectionDeclarations = decls
}

// CanBeParentOf accepts resource definitions, variable declarations and
// connector declarations.
func (s *ServiceDefinition) CanBeParentOf(child Node) bool {
	return IsResourceDefinition(child) ||
		IsVariableDeclaration(child) ||
		IsConnectorDeclaration(child)
}

// Children lists connectors, then variables, then resources.
func (s *ServiceDefinition) Children() []Node {
	return appendNodes(s.body.children(), s.resourceDefinitions)
}

func (s *ServiceDefinition) addChild(child Node) {
	if r, ok := child.(*ResourceDefinition); ok {
		s.resourceDefinitions = append(s.resourceDefinitions, r)
		return
	}
	s.body.add(child)
}

func (s *ServiceDefinition) removeChild(child Node) bool {
	var ok bool
	if s.resourceDefinitions, ok = removeNode(s.resourceDefinitions, child); ok {
		return true
	}
	return s.body.remove(child)
}

func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
