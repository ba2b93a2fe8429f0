// Package render post-processes the default textual representation of a
// value according to two independent display options.
//
// The format spec mini-syntax is an optional namespace marker ('s' short,
// 'f' full) followed by an optional case marker ('L' lower, 'U' upper):
//
//	w := render.Text("my::ns::Widget(42)")
//	render.MustFormat(w, "s")  // "Widget(42)"
//	render.MustFormat(w, "sU") // "WIDGET(42)"
//
// Types opt in by implementing Renderable. Decorate binds display options
// to such a value so it can be handed to the fmt package directly:
//
//	fmt.Printf("[%-12v]\n", render.Decorate(w, render.Options{Namespace: render.NamespaceShort}))
//
// Enum fields are rendered through EnumModule, which falls back to the
// numeric value for entries missing from its table.
package render
