package ast

// Parameter is a typed argument of a resource or function.
type Parameter struct {
	Type string
	Name string
}

// ResourceDefinition is a resource inside a service.
type ResourceDefinition struct {
	node
	body

	Name       string
	Parameters []Parameter

	annotations *Annotations
}

func NewResourceDefinition(name string, params ...Parameter) *ResourceDefinition {
	return &ResourceDefinition{
		node:        newNode(KindResourceDefinition),
		Name:        name,
		Parameters:  params,
		annotations: &Annotations{},
	}
}

func (r *ResourceDefinition) Annotations() *Annotations {
	return r.annotations
}

// AddAnnotation updates the value of key in place, or appends a new entry.
func (r *ResourceDefinition) AddAnnotation(key, value string) {
	if r.annotations == nil {
		r.annotations = &Annotations{}
	}
	r.annotations.Set(key, value)
}

func (r *ResourceDefinition) CanBeParentOf(child Node) bool {
	return IsVariableDeclaration(child) || IsConnectorDeclaration(child)
}

func (r *ResourceDefinition) Children() []Node {
	return r.body.children()
}

func (r *ResourceDefinition) addChild(child Node) {
	r.body.add(child)
}

func (r *ResourceDefinition) removeChild(child Node) bool {
	return r.body.remove(child)
}

// FunctionDefinition is a top level function.
type FunctionDefinition struct {
	node
	body

	Name        string
	Parameters  []Parameter
	ReturnTypes []string
}

func NewFunctionDefinition(name string, params []Parameter, returns ...string) *FunctionDefinition {
	return &FunctionDefinition{
		node:        newNode(KindFunctionDefinition),
		Name:        name,
		Parameters:  params,
		ReturnTypes: returns,
	}
}

func (f *FunctionDefinition) CanBeParentOf(child Node) bool {
	return IsVariableDeclaration(child) || IsConnectorDeclaration(child)
}

func (f *FunctionDefinition) Children() []Node {
	return f.body.children()
}

func (f *FunctionDefinition) addChild(child Node) {
	f.body.add(child)
}

func (f *FunctionDefinition) removeChild(child Node) bool {
	return f.body.remove(child)
}
