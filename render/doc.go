// Package render turns assembled service values into serializable API
// descriptor documents: one declaration per listing group plus a resource
// index pointing at them. Documents marshal to JSON or YAML.
package render
