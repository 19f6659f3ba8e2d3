package build

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

func TestBuildValue(t *testing.T) {
	pos := &language.Position{Line: 1, Column: 1}

	for _, tc := range []struct {
		name string
		node *language.Value
		want *model.Value
	}{
		{
			name: "int",
			node: &language.Value{Kind: language.IntValue, Raw: "42", Position: pos},
			want: &model.Value{Kind: model.ValueKindInt, Int: 42},
		},
		{
			name: "negative int",
			node: &language.Value{Kind: language.IntValue, Raw: "-7", Position: pos},
			want: &model.Value{Kind: model.ValueKindInt, Int: -7},
		},
		{
			name: "float",
			node: &language.Value{Kind: language.FloatValue, Raw: "2.5", Position: pos},
			want: &model.Value{Kind: model.ValueKindFloat, Float: 2.5},
		},
		{
			name: "boolean true",
			node: &language.Value{Kind: language.BooleanValue, Raw: "true", Position: pos},
			want: &model.Value{Kind: model.ValueKindBoolean, Bool: true},
		},
		{
			name: "boolean false",
			node: &language.Value{Kind: language.BooleanValue, Raw: "false", Position: pos},
			want: &model.Value{Kind: model.ValueKindBoolean, Bool: false},
		},
		{
			name: "enum symbol stays unevaluated",
			node: &language.Value{Kind: language.EnumValue, Raw: "NEWHOPE", Position: pos},
			want: &model.Value{Kind: model.ValueKindEnum, Enum: "NEWHOPE"},
		},
		{
			name: "null",
			node: &language.Value{Kind: language.NullValue, Raw: "null", Position: pos},
			want: &model.Value{Kind: model.ValueKindNull},
		},
		{
			name: "string keeps delimited raw text",
			node: &language.Value{Kind: language.StringValue, Raw: "Foo", Position: pos},
			want: &model.Value{Kind: model.ValueKindRaw, Raw: `"Foo"`},
		},
		{
			name: "empty list",
			node: &language.Value{Kind: language.ListValue, Position: pos},
			want: &model.Value{Kind: model.ValueKindList, List: []*model.Value{}},
		},
		{
			name: "list preserves order",
			node: &language.Value{Kind: language.ListValue, Position: pos, Children: []*language.ChildValue{
				{Value: &language.Value{Kind: language.IntValue, Raw: "1", Position: pos}},
				{Value: &language.Value{Kind: language.IntValue, Raw: "2", Position: pos}},
				{Value: &language.Value{Kind: language.IntValue, Raw: "3", Position: pos}},
			}},
			want: &model.Value{Kind: model.ValueKindList, List: []*model.Value{
				{Kind: model.ValueKindInt, Int: 1},
				{Kind: model.ValueKindInt, Int: 2},
				{Kind: model.ValueKindInt, Int: 3},
			}},
		},
		{
			name: "object literal kept unparsed",
			node: &language.Value{Kind: language.ObjectValue, Position: pos, Children: []*language.ChildValue{
				{Name: "x", Value: &language.Value{Kind: language.IntValue, Raw: "1", Position: pos}},
				{Name: "y", Value: &language.Value{Kind: language.IntValue, Raw: "2", Position: pos}},
			}},
			want: &model.Value{Kind: model.ValueKindRaw, Raw: "{x:1,y:2}"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := buildValue(tc.node)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildValueIllegal(t *testing.T) {
	// Variables are never legal default values. The recognizer rejects
	// them upstream, so hitting this path means a grammar/builder
	// mismatch; the failure must carry location and raw text.
	node := &language.Value{
		Kind:     language.Variable,
		Raw:      "myVar",
		Position: &language.Position{Line: 4, Column: 12},
	}
	_, err := buildValue(node)
	require.Error(t, err)

	var ce *ConstructError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Message, "myVar")
	require.Equal(t, 4, ce.Line)
	require.Equal(t, 12, ce.Column)
}

func TestNormalizeDescription(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Foo", "Foo"},
		{"\nFoo\n", "Foo"},
		{"\nFoo", "Foo"},
		{"Foo\n", "Foo"},
		// Only one newline is stripped from each side.
		{"\n\nFoo\n\n", "\nFoo\n"},
	} {
		require.Equal(t, tc.want, normalizeDescription(tc.in))
	}
}
