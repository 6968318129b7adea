// Package variant resolves variant-configured components into ordered class lists.
//
// # Overview
//
// A component declares a Table once: base classes that always apply plus a set
// of axes (size, color, orientation...). Each axis offers a closed set of
// options, and every option maps to a fragment of class tokens. Exactly one
// option per axis is the default.
//
//	var buttonTable = variant.MustTable(variant.Definition{
//		Name: "button",
//		Base: "inline-flex items-center rounded-md",
//		Axes: []variant.Axis{
//			variant.NewAxis("variant", "primary",
//				variant.Opt("primary", "bg-blue-600 text-white"),
//				variant.Opt("ghost", "bg-transparent"),
//			),
//			variant.NewAxis("size", "md",
//				variant.Opt("sm", "h-8 px-3"),
//				variant.Opt("md", "h-10 px-4"),
//			),
//		},
//	})
//
// Call sites resolve a Selection plus caller override classes:
//
//	classes, err := buttonTable.Resolve(variant.Selection{"size": "sm"}, "w-full")
//	// "inline-flex items-center rounded-md bg-blue-600 text-white h-8 px-3 w-full"
//
// # Ordering
//
// Output order is fixed: base, then each axis in declared order, then the
// override tokens. Identical tokens are removed keeping the first position.
// Conflicting utilities are left for the CSS cascade to settle unless the
// table was built with a Merger, which drops earlier tokens that a later
// token overrides within the same property group.
//
// # Errors
//
// NewTable reports every structural violation at once as an
// InvalidVariantTableError. Resolve fails with UnknownAxisError or
// UnknownOptionError and never returns a partial result.
package variant
