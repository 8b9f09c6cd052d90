package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/rui/core"
)

// ParseInline creates computed values from the content of a `style` attribute.
//
// Declarations with illegal values for known properties are skipped and
// traced; a syntax error of the declaration block as a whole is returned as
// an error, together with the initial values.
func ParseInline(s string) (*Computed, error) {
	c := Default()
	if err := c.Declare(s); err != nil {
		return c, err
	}
	return c, nil
}

// Declare parses a CSS declaration block and sets all of its declarations
// on c. Later declarations override earlier ones; declarations marked
// `!important` override any later declaration of the same property.
func (c *Computed) Declare(s string) error {
	// the parser drops the value of a last declaration without ';'
	if t := strings.TrimSpace(s); t != "" && !strings.HasSuffix(t, ";") {
		s = t + ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		return core.WrapError(err, core.ESYNTAX, "cannot parse style declarations")
	}
	important := make(map[string]bool)
	for _, decl := range decls {
		if important[decl.Property] && !decl.Important {
			continue
		}
		if err := c.Set(decl.Property, Property(decl.Value)); err != nil {
			tracer().Infof("ignoring style declaration %s: %v", decl.Property, err)
			continue
		}
		if decl.Important {
			important[decl.Property] = true
		}
	}
	return nil
}
