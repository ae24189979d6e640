package processing

// BasicAlgorithm is a descriptor-backed Algorithm implementation for
// algorithms whose catalog is fully static.
type BasicAlgorithm struct {
	AlgName  string
	Abstract string
	Params   []*ParameterDef
	Outputs  []*OutputDef
}

func (a *BasicAlgorithm) Name() string        { return a.AlgName }
func (a *BasicAlgorithm) Description() string { return a.Abstract }

func (a *BasicAlgorithm) ParameterDefinitions() []*ParameterDef { return a.Params }

func (a *BasicAlgorithm) ParameterDefinition(name string) *ParameterDef {
	for _, p := range a.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (a *BasicAlgorithm) OutputDefinitions() []*OutputDef { return a.Outputs }
