package build

import (
	"fmt"
	"os"

	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

// builder carries the per-document state for one construction pass. A
// builder is used once and discarded; independent documents can be built
// concurrently with no coordination.
type builder struct {
	doc  *language.SchemaDocument
	defs []*model.TypeDefinition
}

// Parse reads the SDL file at path and builds its schema model. The file
// is read in full before any parsing begins. Read failures are reported
// without a location; all parse failures come back as *ParseError.
func Parse(path string) (*model.Model, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema source: %w", err)
	}
	return ParseSource(path, string(source))
}

// ParseSource builds the schema model for source. name identifies the
// document in diagnostics. It either returns a fully built model or a
// single *ParseError; there is no partial result.
func ParseSource(name, source string) (*model.Model, error) {
	doc, err := language.ParseSchema(name, source)
	if err != nil {
		return nil, translate(name, err)
	}
	b := &builder{doc: doc}
	m, err := b.build()
	if err != nil {
		return nil, translate(name, err)
	}
	return m, nil
}

func (b *builder) build() (*model.Model, error) {
	for _, node := range b.doc.Definitions {
		def, err := b.buildDefinition(node)
		if err != nil {
			return nil, err
		}
		b.defs = append(b.defs, def)
	}

	// Built-ins go after the user declarations. The fold below keeps the
	// later entry on a name collision, so a user type sharing a built-in's
	// name is silently shadowed by the built-in.
	b.defs = append(b.defs, model.BuiltinTypes()...)

	types := make(map[string]*model.TypeDefinition, len(b.defs))
	for _, def := range b.defs {
		types[def.Name] = def
	}

	return &model.Model{
		Schema: b.buildSchema(),
		Types:  types,
	}, nil
}

// buildSchema resolves the root operation types from the schema block.
// Only the first schema block is honored; later ones are ignored. Roots
// not declared there default to Query, Mutation and Subscription located
// at the document start.
func (b *builder) buildSchema() *model.Schema {
	docLoc := locationOf(b.doc.Position)
	if docLoc == (model.SourceLocation{}) {
		docLoc = model.SourceLocation{Line: 1, Column: 1}
	}

	schema := &model.Schema{}
	if len(b.doc.Schema) > 0 {
		node := b.doc.Schema[0]
		schema.Description = normalizeDescription(node.Description)
		schema.Directives = buildDirectives(node.Directives)
		for _, op := range node.OperationTypes {
			ref := model.NamedType(op.Type, locationOf(op.Position))
			switch op.Operation {
			case language.Query:
				schema.QueryType = ref
			case language.Mutation:
				schema.MutationType = ref
			case language.Subscription:
				schema.SubscriptionType = ref
			}
		}
	}
	if schema.QueryType == nil {
		schema.QueryType = model.NamedType("Query", docLoc)
	}
	if schema.MutationType == nil {
		schema.MutationType = model.NamedType("Mutation", docLoc)
	}
	if schema.SubscriptionType == nil {
		schema.SubscriptionType = model.NamedType("Subscription", docLoc)
	}
	return schema
}

func locationOf(pos *language.Position) model.SourceLocation {
	if pos == nil {
		return model.SourceLocation{}
	}
	return model.SourceLocation{Line: pos.Line, Column: pos.Column}
}
