package model

var IntType = &TypeDefinition{
	Name:        "Int",
	Kind:        TypeKindScalar,
	Description: "The Int scalar type represents non-fractional signed whole numeric values.",
}

var FloatType = &TypeDefinition{
	Name:        "Float",
	Kind:        TypeKindScalar,
	Description: "The Float scalar type represents signed double-precision fractional values.",
}

var StringType = &TypeDefinition{
	Name:        "String",
	Kind:        TypeKindScalar,
	Description: "The String scalar type represents textual data, represented as UTF-8 character sequences.",
}

var BooleanType = &TypeDefinition{
	Name:        "Boolean",
	Kind:        TypeKindScalar,
	Description: "The Boolean scalar type represents true or false.",
}

var IDType = &TypeDefinition{
	Name:        "ID",
	Kind:        TypeKindScalar,
	Description: "The ID scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
}

// BuiltinTypes returns the five always-present scalar definitions in their
// canonical merge order.
func BuiltinTypes() []*TypeDefinition {
	return []*TypeDefinition{IntType, FloatType, StringType, BooleanType, IDType}
}

// IsBuiltin reports whether name is one of the five built-in scalar names.
func IsBuiltin(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}
