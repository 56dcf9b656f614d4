// Package schema defines the model types used to describe the data shapes
// referenced by API listings. A Model is a named schema with typed
// properties; listings carry models keyed by name in their models section.
package schema
