// Package schema decodes definition documents (YAML or JSON) into the
// model contract, lifting known fields and preserving unknown keys as
// opaque passthrough.
package schema
