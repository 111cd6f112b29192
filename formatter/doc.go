// Package formatter holds a minimal tagged element tree and its XML serializer.
//
// This package is organized into:
// - element.go: Element construction (ordered children, optional leaves)
// - xml.go: XML serialization with indentation and escaping
//
// Serialization is done manually for precise control over output format: the
// same tree always renders to the same bytes.
package formatter
