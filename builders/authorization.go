package builders

import "github.com/routedoc/routedoc/service"

// AuthorizationBuilder assembles a service.Authorization reference.
type AuthorizationBuilder struct {
	authType string
	scopes   []service.AuthorizationScope
}

// NewAuthorizationBuilder creates an empty authorization builder.
func NewAuthorizationBuilder() *AuthorizationBuilder {
	return &AuthorizationBuilder{}
}

// Type updates the security scheme type. Empty input keeps the prior value.
func (b *AuthorizationBuilder) Type(authType string) *AuthorizationBuilder {
	b.authType = defaultIfAbsent(authType, b.authType)
	return b
}

// Scopes replaces the scope list. A nil slice keeps the prior list; a
// non-nil slice replaces it with a copy.
func (b *AuthorizationBuilder) Scopes(scopes []service.AuthorizationScope) *AuthorizationBuilder {
	if scopes != nil {
		b.scopes = append([]service.AuthorizationScope(nil), scopes...)
	}
	return b
}

// AppendScope adds one scope to the list.
func (b *AuthorizationBuilder) AppendScope(scope, description string) *AuthorizationBuilder {
	b.scopes = append(b.scopes, service.AuthorizationScope{Scope: scope, Description: description})
	return b
}

// Build materializes the authorization reference.
func (b *AuthorizationBuilder) Build() service.Authorization {
	auth := service.Authorization{Type: b.authType}
	if len(b.scopes) > 0 {
		auth.Scopes = append([]service.AuthorizationScope(nil), b.scopes...)
	}
	return auth
}
