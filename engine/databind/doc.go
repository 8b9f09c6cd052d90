/*
Package databind attaches declarative data bindings to elements.

Bindings are declared with element attributes of the form

	data-<type>[-<modifier>]="<expression>"

where type selects a data view or data controller from a Factory. Views
push values from a data model into an element, controllers feed values
from an element back into the model. Expressions are names of model
variables.

Structural views generate the content of their element (e.g. `data-for`).
A structural binding on an element cancels all other bindings on the same
element; those belong to the generated content.

Built-in views are

	data-attr-<name>     sets attribute <name> to the variable's value
	data-class-<name>    sets class <name> if the variable is truthy
	data-style-<prop>    sets style property <prop> to the variable's value
	data-if              hides the element if the variable is falsy
	data-value           sets the `value` attribute
	data-for             repeats its inner markup for every item of a list

and the built-in controller is `data-value`, which writes the `value`
attribute of an element back to the model.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package databind

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rui.databind'.
func tracer() tracing.Trace {
	return tracing.Select("rui.databind")
}
