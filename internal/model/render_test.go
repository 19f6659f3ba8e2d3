package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func defaultSchema() *Schema {
	loc := SourceLocation{Line: 1, Column: 1}
	return &Schema{
		QueryType:        NamedType("Query", loc),
		MutationType:     NamedType("Mutation", loc),
		SubscriptionType: NamedType("Subscription", loc),
	}
}

func TestRenderTypes(t *testing.T) {
	loc := SourceLocation{}
	m := &Model{
		Schema: defaultSchema(),
		Types: map[string]*TypeDefinition{
			"String": StringType, // built-ins are skipped
			"Episode": {
				Name: "Episode",
				Kind: TypeKindEnum,
				EnumValues: []*EnumValue{
					{Name: "NEWHOPE"},
					{Name: "EMPIRE"},
				},
			},
			"Query": {
				Name: "Query",
				Kind: TypeKindObject,
				Fields: []*Field{
					{
						Name: "hero",
						Type: NamedType("Character", loc),
						Arguments: []*InputValue{
							{
								Name:    "episode",
								Type:    NamedType("Episode", loc),
								Default: &Value{Kind: ValueKindEnum, Enum: "NEWHOPE"},
							},
						},
					},
				},
			},
		},
	}

	want := `enum Episode {
  NEWHOPE
  EMPIRE
}

type Query {
  hero(episode: Episode = NEWHOPE): Character
}
`
	if diff := cmp.Diff(want, Render(m)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSchemaBlockOnlyWhenNonDefault(t *testing.T) {
	m := &Model{Schema: defaultSchema(), Types: map[string]*TypeDefinition{}}
	require.Equal(t, "\n", Render(m))

	m.Schema.MutationType = NamedType("M", SourceLocation{})
	want := `schema {
  query: Query
  mutation: M
  subscription: Subscription
}
`
	require.Equal(t, want, Render(m))
}

func TestRenderValue(t *testing.T) {
	for _, tc := range []struct {
		value *Value
		want  string
	}{
		{nil, "null"},
		{&Value{Kind: ValueKindNull}, "null"},
		{&Value{Kind: ValueKindInt, Int: 42}, "42"},
		{&Value{Kind: ValueKindFloat, Float: 2.5}, "2.5"},
		{&Value{Kind: ValueKindBoolean, Bool: true}, "true"},
		{&Value{Kind: ValueKindEnum, Enum: "NEWHOPE"}, "NEWHOPE"},
		{&Value{Kind: ValueKindRaw, Raw: `"dog"`}, `"dog"`},
		{&Value{Kind: ValueKindRaw, Raw: "{x:1,y:2}"}, "{x:1,y:2}"},
		{&Value{Kind: ValueKindList, List: []*Value{
			{Kind: ValueKindInt, Int: 1},
			{Kind: ValueKindInt, Int: 2},
		}}, "[1, 2]"},
		{&Value{Kind: ValueKindList, List: []*Value{}}, "[]"},
	} {
		require.Equal(t, tc.want, RenderValue(tc.value))
	}
}
