package bootstrap

import "fmt"

// DiscoveryError indicates a bad root directory or glob pattern.
type DiscoveryError struct {
	Root    string
	Pattern string
	Err     error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovering %s under %s: %v", e.Pattern, e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// TemplateError indicates a file that failed to render: malformed template
// syntax or a reference to an undefined variable or filter.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// ParseError indicates a rendered file that is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownObjectTypeError indicates a filename whose type segment does not
// select any known record type, or that has too few dot segments to carry
// one. Bootstrap data must be exhaustively understood or rejected.
type UnknownObjectTypeError struct {
	Path string
	Tag  string
}

func (e *UnknownObjectTypeError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("no object type found in filename %q", e.Path)
	}
	return fmt.Sprintf("unknown object type %q in filename %q", e.Tag, e.Path)
}

// MalformedRecordError indicates a rendered file whose top level is neither
// a JSON object nor an array of objects.
type MalformedRecordError struct {
	Path string
	Got  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: expected object, found %s", e.Path, e.Got)
}

// DecodeError indicates a record that does not match the schema for its
// type. Field names the offending field when it is known.
type DecodeError struct {
	Path  string
	Type  ObjectType
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decoding %s record from %s: field %q: %v", e.Type, e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("decoding %s record from %s: %v", e.Type, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IntegrityError indicates a constraint violation, typically a deferred
// foreign key check failing at commit time.
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }
