package build

import (
	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

// buildTypeRef converts a type-reference node into a TypeRef, preserving
// nesting and source location. The grammar only produces non-null over a
// named or list shape; anything else fails fast rather than being accepted
// silently.
func buildTypeRef(node *language.Type) (*model.TypeRef, error) {
	if node == nil {
		return nil, &ConstructError{Message: "missing type reference"}
	}
	if node.NonNull {
		inner, err := buildTypeRef(&language.Type{
			NamedType: node.NamedType,
			Elem:      node.Elem,
			NonNull:   false,
			Position:  node.Position,
		})
		if err != nil {
			return nil, err
		}
		return nonNullOf(inner, node.Position)
	}
	if node.Elem != nil {
		inner, err := buildTypeRef(node.Elem)
		if err != nil {
			return nil, err
		}
		return model.ListType(inner), nil
	}
	if node.NamedType == "" {
		return nil, errIllegalTypeRef(node)
	}
	return model.NamedType(node.NamedType, locationOf(node.Position)), nil
}

// nonNullOf wraps inner in a non-null reference. Non-null never wraps
// another non-null.
func nonNullOf(inner *model.TypeRef, pos *language.Position) (*model.TypeRef, error) {
	switch inner.Kind {
	case model.TypeRefKindNamed, model.TypeRefKindList:
		return model.NonNullType(inner), nil
	default:
		return nil, constructErrorf(pos, "non-null type reference cannot wrap %s", inner)
	}
}
