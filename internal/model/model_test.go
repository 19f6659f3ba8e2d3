package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDirectiveArgumentsLastWriteWins(t *testing.T) {
	d := &Directive{Name: "foo"}
	d.SetArgument("a", "1")
	d.SetArgument("b", "2")
	d.SetArgument("a", "3")

	// Overwriting keeps the original insertion position.
	want := []*DirectiveArgument{{Name: "a", Value: "3"}, {Name: "b", Value: "2"}}
	if diff := cmp.Diff(want, d.Arguments); diff != "" {
		t.Errorf("arguments mismatch (-want +got):\n%s", diff)
	}

	v, ok := d.Argument("a")
	require.True(t, ok)
	require.Equal(t, "3", v)

	_, ok = d.Argument("missing")
	require.False(t, ok)
}

func TestTypeRefString(t *testing.T) {
	loc := SourceLocation{Line: 1, Column: 1}
	for _, tc := range []struct {
		ref  *TypeRef
		want string
	}{
		{NamedType("String", loc), "String"},
		{ListType(NamedType("Int", loc)), "[Int]"},
		{NonNullType(NamedType("ID", loc)), "ID!"},
		{NonNullType(ListType(NonNullType(NamedType("Int", loc)))), "[Int!]!"},
	} {
		require.Equal(t, tc.want, tc.ref.String())
	}
}

func TestTypeRefHelpers(t *testing.T) {
	loc := SourceLocation{Line: 2, Column: 3}
	ref := NonNullType(ListType(NamedType("Pet", loc)))

	require.True(t, ref.IsNonNull())
	require.False(t, ref.Unwrap().IsNonNull())
	require.Equal(t, "Pet", ref.NamedTypeName())
	require.Equal(t, loc, ref.Unwrap().Unwrap().Loc)
}

func TestBuiltinTable(t *testing.T) {
	builtins := BuiltinTypes()
	require.Len(t, builtins, 5)
	for _, def := range builtins {
		require.Equal(t, TypeKindScalar, def.Kind)
		require.NotEmpty(t, def.Description)
		require.True(t, IsBuiltin(def.Name))
	}
	require.False(t, IsBuiltin("DateTime"))
}
