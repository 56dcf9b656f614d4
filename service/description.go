package service

// ApiDescription describes a single routed path within a listing, together
// with the operations reachable at that path.
type ApiDescription struct {
	GroupName   string       `yaml:"-" json:"-"`
	Path        string       `yaml:"path" json:"path"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Operations  []*Operation `yaml:"operations,omitempty" json:"operations,omitempty"`
	Hidden      bool         `yaml:"-" json:"-"`
}

// Operation describes one HTTP operation on a described path.
type Operation struct {
	Method        string       `yaml:"method" json:"method"`
	UniqueID      string       `yaml:"nickname,omitempty" json:"nickname,omitempty"`
	Summary       string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Notes         string       `yaml:"notes,omitempty" json:"notes,omitempty"`
	Position      int          `yaml:"position,omitempty" json:"position,omitempty"`
	Produces      []string     `yaml:"produces,omitempty" json:"produces,omitempty"`
	Consumes      []string     `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Parameters    []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	ResponseModel string       `yaml:"type,omitempty" json:"type,omitempty"`
	Deprecated    bool         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Hidden        bool         `yaml:"-" json:"-"`
}

// Parameter describes a single operation input.
//
// ParamType identifies where the parameter is bound: "query", "path",
// "header", "form" or "body".
type Parameter struct {
	Name          string `yaml:"name" json:"name"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	ParamType     string `yaml:"paramType" json:"paramType"`
	Type          string `yaml:"type,omitempty" json:"type,omitempty"`
	Required      bool   `yaml:"required,omitempty" json:"required,omitempty"`
	AllowMultiple bool   `yaml:"allowMultiple,omitempty" json:"allowMultiple,omitempty"`
	DefaultValue  string `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
}
