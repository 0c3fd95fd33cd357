package story

import (
	"fmt"

	"github.com/vellum-ui/vellum"
	"github.com/vellum-ui/vellum/ui"
)

// DefaultRegistry returns the built-in catalog: one story per kit
// component plus a few composition examples.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(Story{
		Name:        "button/variants",
		Description: "Every button variant, plus disabled",
		Build: func() *vellum.Descriptor {
			return ui.Card(
				ui.Label("Buttons"),
				ui.HStack(
					ui.Button("Default"),
					ui.Button("Primary", ui.Primary()),
					ui.Button("Secondary", ui.Secondary()),
					ui.Button("Danger", ui.Danger()),
					ui.Button("Ghost", ui.Ghost()),
					ui.Button("Disabled", ui.Primary(), vellum.WithDisabled()),
				),
			)
		},
	})

	counter := 0
	r.Register(Story{
		Name:        "button/counter",
		Description: "Click handlers and rebuild-on-change",
		Build: func() *vellum.Descriptor {
			return ui.Card(
				ui.Label(fmt.Sprintf("Clicked %d times", counter)),
				ui.HStack(
					ui.Button("Increment", ui.Primary(), vellum.WithOnClick(func() { counter++ })),
					ui.Button("Reset", ui.Danger(), vellum.WithOnClick(func() { counter = 0 })),
				),
			)
		},
	})

	selected := 0
	items := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	r.Register(Story{
		Name:        "list/selection",
		Description: "Keyed rows with checked state",
		Build: func() *vellum.Descriptor {
			rows := make([]*vellum.Descriptor, len(items))
			for i, name := range items {
				i := i
				opts := []vellum.DescOption{
					vellum.WithKey(name),
					vellum.WithOnClick(func() { selected = i }),
				}
				if i == selected {
					opts = append(opts, vellum.WithChecked())
				}
				rows[i] = ui.ListRow(name, opts...)
			}
			return ui.Card(
				ui.Label("Pick one"),
				ui.List(rows...),
			)
		},
	})

	r.Register(Story{
		Name:        "card/profile",
		Description: "Composition: card, badge, divider, image",
		Build: func() *vellum.Descriptor {
			return ui.Card(
				ui.HStack(
					ui.Image("avatar.png"),
					ui.VStack(
						ui.Label("Robin Tern"),
						ui.Badge("maintainer"),
					),
				),
				ui.Divider(),
				ui.Label("Builds component engines for fun."),
				ui.HStack(
					ui.Button("Follow", ui.Primary()),
					ui.Button("Message"),
				),
			)
		},
	})

	r.Register(Story{
		Name:        "engine/unknown-kind",
		Description: "Unknown kinds degrade to placeholders",
		Build: func() *vellum.Descriptor {
			return ui.Card(
				ui.Label("The middle child below is an unknown kind:"),
				ui.HStack(
					ui.Badge("before"),
					vellum.NewDescriptor("widget-from-the-future",
						vellum.WithChildren(ui.Label("never built"))),
					ui.Badge("after"),
				),
			)
		},
	})

	return r
}
