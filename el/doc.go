// Package el provides short-name constructors for building component
// trees:
//
//	import "github.com/kryon-dev/kir/el"
//
//	app := el.Column().AddChildren(
//	    el.Heading("Settings", 1),
//	    el.Row().AddChildren(
//	        el.Text("Theme"),
//	        el.Dropdown([]string{"light", "dark"}, 0),
//	    ),
//	    el.Button("Save").On("click", "onSave"),
//	)
//
// Every constructor is a thin re-export of the pkg/ir constructors; the
// package exists so application code reads as markup. el.Heading panics on
// a level outside 1..6 — use ir.NewHeading to handle the error instead.
package el
