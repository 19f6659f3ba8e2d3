package build

import (
	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

// buildDefinition assembles one TypeDefinition from a top-level node. Only
// the node's immediate children are consumed; whether referenced types
// exist is a later validation concern, not handled here.
func (b *builder) buildDefinition(node *language.Definition) (*model.TypeDefinition, error) {
	def := &model.TypeDefinition{
		Name:        node.Name,
		Description: normalizeDescription(node.Description),
		Directives:  buildDirectives(node.Directives),
		Loc:         locationOf(node.Position),
	}

	var err error
	switch node.Kind {
	case language.Scalar:
		def.Kind = model.TypeKindScalar
	case language.Object:
		def.Kind = model.TypeKindObject
		for _, name := range node.Interfaces {
			def.Interfaces = append(def.Interfaces, model.NamedType(name, def.Loc))
		}
		def.Fields, err = b.buildFields(node.Fields)
	case language.Interface:
		def.Kind = model.TypeKindInterface
		def.Fields, err = b.buildFields(node.Fields)
	case language.Union:
		def.Kind = model.TypeKindUnion
		for _, name := range node.Types {
			def.MemberTypes = append(def.MemberTypes, model.NamedType(name, def.Loc))
		}
	case language.Enum:
		def.Kind = model.TypeKindEnum
		def.EnumValues = buildEnumValues(node.EnumValues)
	case language.InputObject:
		def.Kind = model.TypeKindInputObject
		def.InputFields, err = b.buildInputFields(node.Fields)
	default:
		err = constructErrorf(node.Position, "unsupported definition kind %q for type %q", node.Kind, node.Name)
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}
