package component

import "github.com/alexisbeaulieu97/stylekit/internal/variant"

var (
	ButtonTable = variant.MustTable(variant.Definition{
		Name: "button",
		Base: "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50",
		Axes: []variant.Axis{
			variant.NewAxis("variant", "default",
				variant.Opt("default", "bg-primary text-primary-foreground shadow hover:bg-primary/90"),
				variant.Opt("destructive", "bg-destructive text-destructive-foreground shadow-sm hover:bg-destructive/90"),
				variant.Opt("outline", "border border-input bg-background shadow-sm hover:bg-accent hover:text-accent-foreground"),
				variant.Opt("secondary", "bg-secondary text-secondary-foreground shadow-sm hover:bg-secondary/80"),
				variant.Opt("ghost", "hover:bg-accent hover:text-accent-foreground"),
				variant.Opt("link", "text-primary underline-offset-4 hover:underline"),
			),
			variant.NewAxis("size", "default",
				variant.Opt("default", "h-9 px-4 py-2"),
				variant.Opt("sm", "h-8 rounded-md px-3 text-xs"),
				variant.Opt("lg", "h-10 rounded-md px-8"),
				variant.Opt("icon", "h-9 w-9"),
			),
		},
	})

	BadgeTable = variant.MustTable(variant.Definition{
		Name: "badge",
		Base: "inline-flex items-center rounded-md border px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2",
		Axes: []variant.Axis{
			variant.NewAxis("variant", "default",
				variant.Opt("default", "border-transparent bg-primary text-primary-foreground shadow hover:bg-primary/80"),
				variant.Opt("secondary", "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80"),
				variant.Opt("destructive", "border-transparent bg-destructive text-destructive-foreground shadow hover:bg-destructive/80"),
				variant.Opt("outline", "text-foreground"),
			),
		},
	})

	AlertTable = variant.MustTable(variant.Definition{
		Name: "alert",
		Base: "relative w-full rounded-lg border px-4 py-3 text-sm [&>svg+div]:translate-y-[-3px] [&>svg]:absolute [&>svg]:left-4 [&>svg]:top-4 [&>svg]:text-foreground [&>svg~*]:pl-7",
		Axes: []variant.Axis{
			variant.NewAxis("variant", "default",
				variant.Opt("default", "bg-background text-foreground"),
				variant.Opt("destructive", "border-destructive/50 text-destructive dark:border-destructive [&>svg]:text-destructive"),
			),
		},
	})

	CardTable = variant.MustTable(variant.Definition{
		Name: "card",
		Base: "rounded-xl border bg-card text-card-foreground shadow",
	})

	TabsListTable = variant.MustTable(variant.Definition{
		Name: "tabs-list",
		Base: "inline-flex items-center justify-center rounded-lg bg-muted p-1 text-muted-foreground",
		Axes: []variant.Axis{
			variant.NewAxis("orientation", "horizontal",
				variant.Opt("horizontal", "h-9 flex-row"),
				variant.Opt("vertical", "h-auto flex-col"),
			),
		},
	})

	TabsTriggerTable = variant.MustTable(variant.Definition{
		Name: "tabs-trigger",
		Base: "inline-flex items-center justify-center whitespace-nowrap rounded-md px-3 py-1 text-sm font-medium ring-offset-background transition-all focus-visible:outline-none disabled:pointer-events-none disabled:opacity-50",
		Axes: []variant.Axis{
			variant.NewAxis("state", "inactive",
				variant.Opt("inactive", "text-muted-foreground"),
				variant.Opt("active", "bg-background text-foreground shadow"),
			),
		},
	})

	TooltipTable = variant.MustTable(variant.Definition{
		Name: "tooltip",
		Base: "z-50 overflow-hidden rounded-md bg-primary px-3 py-1.5 text-xs text-primary-foreground animate-in fade-in-0 zoom-in-95",
		Axes: []variant.Axis{
			variant.NewAxis("side", "top",
				variant.Opt("top", "slide-in-from-bottom-2"),
				variant.Opt("right", "slide-in-from-left-2"),
				variant.Opt("bottom", "slide-in-from-top-2"),
				variant.Opt("left", "slide-in-from-right-2"),
			),
		},
	})

	ProgressTable = variant.MustTable(variant.Definition{
		Name: "progress",
		Base: "relative w-full overflow-hidden rounded-full bg-primary/20",
		Axes: []variant.Axis{
			variant.NewAxis("size", "default",
				variant.Opt("sm", "h-1"),
				variant.Opt("default", "h-2"),
				variant.Opt("lg", "h-4"),
			),
		},
	})

	ProgressIndicatorTable = variant.MustTable(variant.Definition{
		Name: "progress-indicator",
		Base: "h-full w-full flex-1 bg-primary transition-all",
		Axes: []variant.Axis{
			variant.NewAxis("state", "loading",
				variant.Opt("loading", ""),
				variant.Opt("complete", "bg-green-600"),
				variant.Opt("indeterminate", "animate-pulse w-1/3"),
			),
		},
	})

	ToggleTable = variant.MustTable(variant.Definition{
		Name: "toggle",
		Base: "inline-flex items-center justify-center gap-2 rounded-md text-sm font-medium transition-colors hover:bg-muted hover:text-muted-foreground focus-visible:outline-none disabled:pointer-events-none disabled:opacity-50 data-[state=on]:bg-accent data-[state=on]:text-accent-foreground",
		Axes: []variant.Axis{
			variant.NewAxis("variant", "default",
				variant.Opt("default", "bg-transparent"),
				variant.Opt("outline", "border border-input bg-transparent shadow-sm hover:bg-accent hover:text-accent-foreground"),
			),
			variant.NewAxis("size", "default",
				variant.Opt("default", "h-9 px-2 min-w-9"),
				variant.Opt("sm", "h-8 px-1.5 min-w-8"),
				variant.Opt("lg", "h-10 px-2.5 min-w-10"),
			),
		},
	})

	ToggleGroupTable = variant.MustTable(variant.Definition{
		Name: "toggle-group",
		Base: "flex items-center justify-center gap-1",
		Axes: []variant.Axis{
			variant.NewAxis("orientation", "horizontal",
				variant.Opt("horizontal", "flex-row"),
				variant.Opt("vertical", "flex-col"),
			),
		},
	})

	DialogContentTable = variant.MustTable(variant.Definition{
		Name: "dialog-content",
		Base: "fixed left-[50%] top-[50%] z-50 grid w-full translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg duration-200 sm:rounded-lg",
		Axes: []variant.Axis{
			variant.NewAxis("size", "md",
				variant.Opt("sm", "max-w-sm"),
				variant.Opt("md", "max-w-lg"),
				variant.Opt("lg", "max-w-3xl"),
				variant.Opt("full", "max-w-none h-full sm:rounded-none"),
			),
		},
		Merger: variant.DefaultMerger(),
	})

	NavigationShellTable = variant.MustTable(variant.Definition{
		Name: "navigation-shell",
		Base: "flex min-h-screen w-full bg-background",
		Axes: []variant.Axis{
			variant.NewAxis("layout", "sidebar",
				variant.Opt("sidebar", "flex-row"),
				variant.Opt("topbar", "flex-col"),
			),
			variant.NewAxis("density", "comfortable",
				variant.Opt("comfortable", "gap-4 p-4"),
				variant.Opt("compact", "gap-2 p-2"),
			),
		},
	})

	SeparatorTable = variant.MustTable(variant.Definition{
		Name: "separator",
		Base: "shrink-0 bg-border",
		Axes: []variant.Axis{
			variant.NewAxis("orientation", "horizontal",
				variant.Opt("horizontal", "h-[1px] w-full"),
				variant.Opt("vertical", "h-full w-[1px]"),
			),
		},
	})
)

func builtinDefinitions() []*Definition {
	return []*Definition{
		Define("button", "button", ButtonTable).Describe("Clickable action with visual variants and sizes"),
		Define("badge", "div", BadgeTable).Describe("Compact status label"),
		Define("alert", "div", AlertTable).Describe("Callout for important messages"),
		Define("card", "div", CardTable).Describe("Bordered container for grouped content"),
		Define("tabs-list", "div", TabsListTable).Describe("Container of tab triggers"),
		Define("tabs-trigger", "button", TabsTriggerTable).Describe("Single tab button"),
		Define("tooltip", "div", TooltipTable).Describe("Floating hint next to its trigger"),
		Define("progress", "div", ProgressTable).Describe("Progress track"),
		Define("progress-indicator", "div", ProgressIndicatorTable).Describe("Filled part of a progress track"),
		Define("toggle", "button", ToggleTable).Describe("Two-state button"),
		Define("toggle-group", "div", ToggleGroupTable).Describe("Set of toggles sharing variant and size"),
		Define("dialog-content", "div", DialogContentTable).Describe("Modal dialog panel"),
		Define("navigation-shell", "div", NavigationShellTable).Describe("Application frame with navigation"),
		Define("separator", "div", SeparatorTable).Describe("Horizontal or vertical divider"),
	}
}
