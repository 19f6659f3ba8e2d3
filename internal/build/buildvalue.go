package build

import (
	"strconv"

	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

// buildValue converts a literal-value node into a typed Value. String and
// object literals stay opaque: they keep their raw source form so that
// consumers needing structure parse the text themselves.
func buildValue(node *language.Value) (*model.Value, error) {
	switch node.Kind {
	case language.IntValue:
		n, err := strconv.ParseInt(node.Raw, 10, 64)
		if err != nil {
			return nil, errIllegalLiteral(node)
		}
		return &model.Value{Kind: model.ValueKindInt, Int: n}, nil
	case language.FloatValue:
		f, err := strconv.ParseFloat(node.Raw, 64)
		if err != nil {
			return nil, errIllegalLiteral(node)
		}
		return &model.Value{Kind: model.ValueKindFloat, Float: f}, nil
	case language.BooleanValue:
		return &model.Value{Kind: model.ValueKindBoolean, Bool: node.Raw == "true"}, nil
	case language.EnumValue:
		return &model.Value{Kind: model.ValueKindEnum, Enum: node.Raw}, nil
	case language.ListValue:
		list := &model.Value{Kind: model.ValueKindList, List: []*model.Value{}}
		for _, child := range node.Children {
			elem, err := buildValue(child.Value)
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, elem)
		}
		return list, nil
	case language.StringValue, language.BlockValue, language.ObjectValue:
		return &model.Value{Kind: model.ValueKindRaw, Raw: node.String()}, nil
	case language.NullValue:
		return &model.Value{Kind: model.ValueKindNull}, nil
	default:
		// Unreachable when the recognizer holds up its end; variables and
		// unknown shapes are not legal default values.
		return nil, errIllegalLiteral(node)
	}
}
