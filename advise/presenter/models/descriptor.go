package models

// Descriptor describes what created the document as well as surrounding metadata
type Descriptor struct {
	Name          string      `json:"name" yaml:"name"`
	Version       string      `json:"version" yaml:"version"`
	Configuration interface{} `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}
