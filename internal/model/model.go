package model

import "strings"

// Model is the final output of the construction pass: the resolved schema
// block plus every named type keyed by name. All entities are built once
// during a single pass over one document and never mutated afterward.
type Model struct {
	Schema *Schema                    `json:"schema"`
	Types  map[string]*TypeDefinition `json:"types"`
}

// Schema carries the resolved root operation types. The roots are always
// non-nil named references; absent operation types default to the names
// Query, Mutation and Subscription located at the document start.
type Schema struct {
	Description      string       `json:"description,omitempty"`
	Directives       []*Directive `json:"directives,omitempty"`
	QueryType        *TypeRef     `json:"queryType"`
	MutationType     *TypeRef     `json:"mutationType"`
	SubscriptionType *TypeRef     `json:"subscriptionType"`
}

// SourceLocation is a 1-based line/column pair pointing into the source
// document. It exists for diagnostics only and never participates in
// equality of semantic entities.
type SourceLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// TypeKind discriminates the six named type definition variants.
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// TypeDefinition is one named type. Kind selects which of the variant
// fields are populated; Description is always present, possibly empty.
type TypeDefinition struct {
	Name        string         `json:"name"`
	Kind        TypeKind       `json:"kind"`
	Description string         `json:"description,omitempty"`
	Directives  []*Directive   `json:"directives,omitempty"`
	Loc         SourceLocation `json:"loc"`

	Fields      []*Field      `json:"fields,omitempty"`      // OBJECT, INTERFACE
	Interfaces  []*TypeRef    `json:"interfaces,omitempty"`  // OBJECT
	MemberTypes []*TypeRef    `json:"memberTypes,omitempty"` // UNION
	EnumValues  []*EnumValue  `json:"enumValues,omitempty"`  // ENUM
	InputFields []*InputValue `json:"inputFields,omitempty"` // INPUT_OBJECT
}

// Field is a declaration on an object or interface type.
type Field struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Directives  []*Directive   `json:"directives,omitempty"`
	Type        *TypeRef       `json:"type"`
	Arguments   []*InputValue  `json:"arguments,omitempty"`
	Loc         SourceLocation `json:"loc"`
}

// InputValue is a field argument or an input object field. Default is nil
// when the declaration carries no default value.
type InputValue struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Directives  []*Directive   `json:"directives,omitempty"`
	Type        *TypeRef       `json:"type"`
	Default     *Value         `json:"default,omitempty"`
	Loc         SourceLocation `json:"loc"`
}

// EnumValue is one value of an enum type.
type EnumValue struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Directives  []*Directive   `json:"directives,omitempty"`
	Loc         SourceLocation `json:"loc"`
}

// Directive is a directive application. Argument names are lowercased and
// map to the unparsed source text of the value expression; directive
// argument values are opaque at this layer.
type Directive struct {
	Name      string               `json:"name"`
	Arguments []*DirectiveArgument `json:"arguments,omitempty"`
	Loc       SourceLocation       `json:"loc"`
}

type DirectiveArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SetArgument inserts or overwrites an argument, keeping insertion order.
// A repeated name overwrites the earlier value in place.
func (d *Directive) SetArgument(name, value string) {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			arg.Value = value
			return
		}
	}
	d.Arguments = append(d.Arguments, &DirectiveArgument{Name: name, Value: value})
}

// Argument returns the raw value text for name and whether it was set.
func (d *Directive) Argument(name string) (string, bool) {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return "", false
}

// TypeRefKind discriminates type reference shapes.
type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

// TypeRef represents a type reference (e.g. String, [String!], String!).
// NON_NULL only ever wraps NAMED or LIST; the builders reject any other
// shape before a TypeRef is constructed.
type TypeRef struct {
	Kind   TypeRefKind    `json:"kind"`
	OfType *TypeRef       `json:"ofType,omitempty"`
	Named  string         `json:"named,omitempty"`
	Loc    SourceLocation `json:"loc,omitempty"`
}

func NamedType(name string, loc SourceLocation) *TypeRef {
	return &TypeRef{Kind: TypeRefKindNamed, Named: name, Loc: loc}
}

func ListType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindList, OfType: t} }

func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }

// IsNonNull reports whether the reference is wrapped with Non-Null.
func (t *TypeRef) IsNonNull() bool { return t != nil && t.Kind == TypeRefKindNonNull }

// Unwrap removes one layer of Non-Null or List wrapping.
func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

// NamedTypeName returns the innermost named type of the reference.
func (t *TypeRef) NamedTypeName() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

func (t *TypeRef) String() string {
	if t == nil {
		return "Unknown"
	}
	switch t.Kind {
	case TypeRefKindNamed:
		return t.Named
	case TypeRefKindList:
		return "[" + t.OfType.String() + "]"
	case TypeRefKindNonNull:
		inner := t.OfType.String()
		if strings.HasSuffix(inner, "!") {
			return inner
		}
		return inner + "!"
	default:
		return "Unknown"
	}
}

// ValueKind discriminates literal value variants.
type ValueKind string

const (
	ValueKindInt     ValueKind = "INT"
	ValueKindFloat   ValueKind = "FLOAT"
	ValueKindBoolean ValueKind = "BOOLEAN"
	ValueKindEnum    ValueKind = "ENUM"
	ValueKindList    ValueKind = "LIST"
	ValueKindRaw     ValueKind = "RAW"
	ValueKindNull    ValueKind = "NULL"
)

// Value is a literal default value. String and object literals are not
// decomposed: they keep the raw source text under the RAW kind, and any
// consumer needing structured defaults parses that text itself. An absent
// default is a nil *Value, distinct from the explicit NULL literal.
type Value struct {
	Kind  ValueKind `json:"kind"`
	Int   int64     `json:"int,omitempty"`
	Float float64   `json:"float,omitempty"`
	Bool  bool      `json:"bool,omitempty"`
	Enum  string    `json:"enum,omitempty"`
	Raw   string    `json:"raw,omitempty"`
	List  []*Value  `json:"list,omitempty"`
}
