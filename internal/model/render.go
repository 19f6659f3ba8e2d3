package model

import (
	"sort"
	"strconv"
	"strings"
)

// Render produces SDL from the model.
// Deterministic ordering: type names sorted lexicographically, built-in
// scalars skipped. Directive applications are rendered from the raw
// argument text captured at parse time.
func Render(m *Model) string {
	if m == nil {
		return ""
	}
	var b strings.Builder

	renderSchema(&b, m.Schema)

	typeNames := make([]string, 0, len(m.Types))
	for name := range m.Types {
		if IsBuiltin(name) {
			continue
		}
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	for _, name := range typeNames {
		typ := m.Types[name]
		switch typ.Kind {
		case TypeKindScalar:
			renderScalar(&b, typ)
		case TypeKindEnum:
			renderEnum(&b, typ)
		case TypeKindInputObject:
			renderInputObject(&b, typ)
		case TypeKindObject:
			renderObject(&b, typ)
		case TypeKindInterface:
			renderInterface(&b, typ)
		case TypeKindUnion:
			renderUnion(&b, typ)
		}
	}

	out := strings.TrimRight(b.String(), "\n") + "\n"
	return out
}

// ----- render helpers -----

func renderSchema(b *strings.Builder, s *Schema) {
	if s == nil {
		return
	}
	// The schema block is omitted when all three roots carry their
	// default names and nothing else is declared on it.
	defaulted := s.QueryType.Named == "Query" &&
		s.MutationType.Named == "Mutation" &&
		s.SubscriptionType.Named == "Subscription"
	if defaulted && s.Description == "" && len(s.Directives) == 0 {
		return
	}
	renderDescription(b, s.Description)
	b.WriteString("schema")
	renderDirectives(b, s.Directives)
	b.WriteString(" {\n")
	b.WriteString("  query: " + s.QueryType.Named + "\n")
	b.WriteString("  mutation: " + s.MutationType.Named + "\n")
	b.WriteString("  subscription: " + s.SubscriptionType.Named + "\n")
	b.WriteString("}\n\n")
}

func renderDescription(b *strings.Builder, desc string) {
	if desc == "" {
		return
	}
	b.WriteString("\"\"\"\n")
	escaped := strings.ReplaceAll(desc, "\"", "\\\"")
	b.WriteString(escaped)
	b.WriteString("\n\"\"\"\n")
}

func renderDirectives(b *strings.Builder, directives []*Directive) {
	for _, d := range directives {
		b.WriteString(" @")
		b.WriteString(d.Name)
		if len(d.Arguments) > 0 {
			b.WriteString("(")
			for i, arg := range d.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(arg.Name)
				b.WriteString(": ")
				b.WriteString(arg.Value)
			}
			b.WriteString(")")
		}
	}
}

func renderScalar(b *strings.Builder, typ *TypeDefinition) {
	renderDescription(b, typ.Description)
	b.WriteString("scalar ")
	b.WriteString(typ.Name)
	renderDirectives(b, typ.Directives)
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, typ *TypeDefinition) {
	renderDescription(b, typ.Description)
	b.WriteString("enum ")
	b.WriteString(typ.Name)
	renderDirectives(b, typ.Directives)
	b.WriteString(" {\n")
	for _, val := range typ.EnumValues {
		renderDescription(b, val.Description)
		b.WriteString("  ")
		b.WriteString(val.Name)
		renderDirectives(b, val.Directives)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObject(b *strings.Builder, typ *TypeDefinition) {
	renderDescription(b, typ.Description)
	b.WriteString("input ")
	b.WriteString(typ.Name)
	renderDirectives(b, typ.Directives)
	b.WriteString(" {\n")
	for _, field := range typ.InputFields {
		renderDescription(b, field.Description)
		b.WriteString("  ")
		b.WriteString(field.Name)
		b.WriteString(": ")
		b.WriteString(field.Type.String())
		if field.Default != nil {
			b.WriteString(" = ")
			b.WriteString(RenderValue(field.Default))
		}
		renderDirectives(b, field.Directives)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderObject(b *strings.Builder, typ *TypeDefinition) {
	renderDescription(b, typ.Description)
	b.WriteString("type ")
	b.WriteString(typ.Name)
	if len(typ.Interfaces) > 0 {
		b.WriteString(" implements ")
		for i, iface := range typ.Interfaces {
			if i > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(iface.Named)
		}
	}
	renderDirectives(b, typ.Directives)
	b.WriteString(" {\n")
	for _, field := range typ.Fields {
		renderField(b, field)
	}
	b.WriteString("}\n\n")
}

func renderInterface(b *strings.Builder, typ *TypeDefinition) {
	renderDescription(b, typ.Description)
	b.WriteString("interface ")
	b.WriteString(typ.Name)
	renderDirectives(b, typ.Directives)
	b.WriteString(" {\n")
	for _, field := range typ.Fields {
		renderField(b, field)
	}
	b.WriteString("}\n\n")
}

func renderUnion(b *strings.Builder, typ *TypeDefinition) {
	renderDescription(b, typ.Description)
	b.WriteString("union ")
	b.WriteString(typ.Name)
	renderDirectives(b, typ.Directives)
	b.WriteString(" = ")
	for i, member := range typ.MemberTypes {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(member.Named)
	}
	b.WriteString("\n\n")
}

func renderField(b *strings.Builder, field *Field) {
	renderDescription(b, field.Description)
	b.WriteString("  ")
	b.WriteString(field.Name)
	if len(field.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range field.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Type.String())
			if arg.Default != nil {
				b.WriteString(" = ")
				b.WriteString(RenderValue(arg.Default))
			}
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(field.Type.String())
	renderDirectives(b, field.Directives)
	b.WriteString("\n")
}

// RenderValue renders a literal default value back to SDL text. RAW values
// are emitted verbatim since they already hold source text.
func RenderValue(v *Value) string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case ValueKindInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueKindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueKindBoolean:
		return strconv.FormatBool(v.Bool)
	case ValueKindEnum:
		return v.Enum
	case ValueKindRaw:
		return v.Raw
	case ValueKindList:
		parts := make([]string, 0, len(v.List))
		for _, item := range v.List {
			parts = append(parts, RenderValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValueKindNull:
		return "null"
	default:
		return ""
	}
}
