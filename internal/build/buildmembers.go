package build

import (
	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

func (b *builder) buildFields(nodes language.FieldList) ([]*model.Field, error) {
	fields := make([]*model.Field, 0, len(nodes))
	for _, node := range nodes {
		field, err := b.buildField(node)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (b *builder) buildField(node *language.FieldDefinition) (*model.Field, error) {
	typ, err := buildTypeRef(node.Type)
	if err != nil {
		return nil, err
	}
	field := &model.Field{
		Name:        node.Name,
		Description: normalizeDescription(node.Description),
		Directives:  buildDirectives(node.Directives),
		Type:        typ,
		Loc:         locationOf(node.Position),
	}
	for _, argNode := range node.Arguments {
		arg, err := b.buildArgument(argNode)
		if err != nil {
			return nil, err
		}
		field.Arguments = append(field.Arguments, arg)
	}
	return field, nil
}

func (b *builder) buildArgument(node *language.ArgumentDefinition) (*model.InputValue, error) {
	typ, err := buildTypeRef(node.Type)
	if err != nil {
		return nil, err
	}
	arg := &model.InputValue{
		Name:        node.Name,
		Description: normalizeDescription(node.Description),
		Directives:  buildDirectives(node.Directives),
		Type:        typ,
		Loc:         locationOf(node.Position),
	}
	if node.DefaultValue != nil {
		if arg.Default, err = buildValue(node.DefaultValue); err != nil {
			return nil, err
		}
	}
	return arg, nil
}

// buildInputFields covers input object fields, which share the field node
// shape but carry a default value and no arguments.
func (b *builder) buildInputFields(nodes language.FieldList) ([]*model.InputValue, error) {
	values := make([]*model.InputValue, 0, len(nodes))
	for _, node := range nodes {
		typ, err := buildTypeRef(node.Type)
		if err != nil {
			return nil, err
		}
		value := &model.InputValue{
			Name:        node.Name,
			Description: normalizeDescription(node.Description),
			Directives:  buildDirectives(node.Directives),
			Type:        typ,
			Loc:         locationOf(node.Position),
		}
		if node.DefaultValue != nil {
			if value.Default, err = buildValue(node.DefaultValue); err != nil {
				return nil, err
			}
		}
		values = append(values, value)
	}
	return values, nil
}

func buildEnumValues(nodes language.EnumValueList) []*model.EnumValue {
	values := make([]*model.EnumValue, 0, len(nodes))
	for _, node := range nodes {
		values = append(values, &model.EnumValue{
			Name:        node.Name,
			Description: normalizeDescription(node.Description),
			Directives:  buildDirectives(node.Directives),
			Loc:         locationOf(node.Position),
		})
	}
	return values
}
