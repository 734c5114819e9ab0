package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // definition validation
	PhaseDecode   Phase = "decode"   // raw bits to typed value
	PhaseEncode   Phase = "encode"   // typed value to raw bits
	PhaseParse    Phase = "parse"    // numeric literal parsing
	PhaseLayout   Phase = "layout"   // grid and address-map layout
	PhaseLoad     Phase = "load"     // definition set loading
)

// Kind categorizes the error
type Kind string

const (
	KindWidthRange      Kind = "width_out_of_range"
	KindBlankName       Kind = "blank_name"
	KindBitOrder        Kind = "bit_order"
	KindWidthMismatch   Kind = "width_mismatch"
	KindExceedsWidth    Kind = "exceeds_width"
	KindFieldOverlap    Kind = "field_overlap"
	KindRegisterOverlap Kind = "register_overlap"
	KindBadLiteral      Kind = "bad_literal"
	KindDuplicateID     Kind = "duplicate_id"
	KindNotFound        Kind = "not_found"
	KindInvalidData     Kind = "invalid_data"
	KindUnsupported     Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	FieldType string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.FieldType != "" {
		b.WriteString(": ")
		b.WriteString(e.FieldType)
		b.WriteString(" field")
	}

	if e.Detail != "" {
		if e.FieldType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the register/field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// FieldType sets the field type name (e.g. "flag", "float half")
func (b *Builder) FieldType(t string) *Builder {
	b.err.FieldType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// WidthOutOfRange creates a register width range error
func WidthOutOfRange(path []string, width, max int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindWidthRange,
		Path:   path,
		Detail: fmt.Sprintf("width %d outside [1, %d]", width, max),
		Value:  width,
	}
}

// BlankName creates a blank name error
func BlankName(path []string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindBlankName,
		Path:   path,
		Detail: "name is blank",
	}
}

// BitOrder creates a bit ordering error (MSB below LSB, or negative LSB)
func BitOrder(path []string, msb, lsb int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindBitOrder,
		Path:   path,
		Detail: fmt.Sprintf("bit range [%d:%d] is not descending from a non-negative LSB", msb, lsb),
	}
}

// WidthMismatch creates a field width constraint error
func WidthMismatch(path []string, fieldType string, got, want int) *Error {
	return &Error{
		Phase:     PhaseValidate,
		Kind:      KindWidthMismatch,
		Path:      path,
		FieldType: fieldType,
		Detail:    fmt.Sprintf("field is %d bits, needs %d", got, want),
		Value:     got,
	}
}

// ExceedsWidth creates a field-outside-register warning
func ExceedsWidth(path []string, msb, width int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindExceedsWidth,
		Path:   path,
		Detail: fmt.Sprintf("MSB %d reaches outside the %d-bit register", msb, width),
		Value:  msb,
	}
}

// FieldOverlap creates an intra-register overlap warning for one field pair
func FieldOverlap(path []string, a, b string, high, low int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindFieldOverlap,
		Path:   path,
		Detail: fmt.Sprintf("fields %q and %q share bits [%d:%d]", a, b, high, low),
	}
}

// RegisterOverlap creates a cross-register address overlap warning
func RegisterOverlap(a, b string, firstUnit, lastUnit int64) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindRegisterOverlap,
		Detail: fmt.Sprintf("registers %q and %q share address units [%d, %d]", a, b, firstUnit, lastUnit),
	}
}

// BadLiteral creates a numeric literal parse error
func BadLiteral(path []string, literal string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindBadLiteral,
		Path:   path,
		Detail: fmt.Sprintf("cannot parse %q", literal),
		Value:  literal,
	}
}

// DuplicateID creates a duplicate identifier load error
func DuplicateID(path []string, id string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindDuplicateID,
		Path:   path,
		Detail: fmt.Sprintf("id %q already in use", id),
		Value:  id,
	}
}

// NotFound creates a not-found error
func NotFound(what, name string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
