package service

// Authorization is a reference to a named security scheme that applies to a
// listing or operation.
type Authorization struct {
	Type   string               `yaml:"type" json:"type"`
	Scopes []AuthorizationScope `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// AuthorizationScope names a single scope of a security scheme.
type AuthorizationScope struct {
	Scope       string `yaml:"scope" json:"scope"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Copy returns a copy of the authorization with its scopes duplicated.
func (a Authorization) Copy() Authorization {
	out := a
	if a.Scopes != nil {
		out.Scopes = append([]AuthorizationScope(nil), a.Scopes...)
	}
	return out
}
