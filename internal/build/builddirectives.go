package build

import (
	"strings"

	language "github.com/hanpama/sdlmodel/internal/language"
	"github.com/hanpama/sdlmodel/internal/model"
)

func buildDirectives(nodes language.DirectiveList) []*model.Directive {
	if len(nodes) == 0 {
		return nil
	}
	directives := make([]*model.Directive, 0, len(nodes))
	for _, node := range nodes {
		directives = append(directives, buildDirective(node))
	}
	return directives
}

// buildDirective captures a directive application as name plus raw
// argument text. Argument names are lowercased; a repeated name overwrites
// the earlier value. Values are never evaluated at this layer.
func buildDirective(node *language.Directive) *model.Directive {
	d := &model.Directive{
		Name: node.Name,
		Loc:  locationOf(node.Position),
	}
	for _, arg := range node.Arguments {
		d.SetArgument(strings.ToLower(arg.Name), arg.Value.String())
	}
	return d
}
