package ui

import "github.com/vellum-ui/vellum"

// Button creates a focusable button descriptor. Pass variant and
// handler options after the label:
//
//	ui.Button("Save", ui.Primary(), vellum.WithOnClick(save))
func Button(label string, opts ...vellum.DescOption) *vellum.Descriptor {
	base := []vellum.DescOption{vellum.WithText(label), vellum.WithFocusable()}
	return vellum.NewDescriptor(KindButton, append(base, opts...)...)
}

// Primary selects the primary button variant.
func Primary() vellum.DescOption {
	return vellum.WithVariant(VariantPrimary)
}

// Secondary selects the secondary button variant.
func Secondary() vellum.DescOption {
	return vellum.WithVariant(VariantSecondary)
}

// Danger selects the danger button variant.
func Danger() vellum.DescOption {
	return vellum.WithVariant(VariantDanger)
}

// Ghost selects the borderless ghost variant.
func Ghost() vellum.DescOption {
	return vellum.WithVariant(VariantGhost)
}

// Label creates a text descriptor.
func Label(text string, opts ...vellum.DescOption) *vellum.Descriptor {
	return vellum.NewDescriptor(KindLabel, append([]vellum.DescOption{vellum.WithText(text)}, opts...)...)
}

// Stack creates a container descriptor. Direction defaults to column;
// use HStack for rows.
func Stack(opts ...vellum.DescOption) *vellum.Descriptor {
	return vellum.NewDescriptor(KindStack, opts...)
}

// VStack creates a column container holding the given children.
func VStack(children ...*vellum.Descriptor) *vellum.Descriptor {
	return vellum.NewDescriptor(KindStack, vellum.WithChildren(children...))
}

// HStack creates a row container holding the given children.
func HStack(children ...*vellum.Descriptor) *vellum.Descriptor {
	return vellum.NewDescriptor(KindStack, vellum.WithVariant("row"), vellum.WithChildren(children...))
}

// Card creates a raised panel holding the given children.
func Card(children ...*vellum.Descriptor) *vellum.Descriptor {
	return vellum.NewDescriptor(KindCard, vellum.WithChildren(children...))
}

// Badge creates a small pill descriptor.
func Badge(text string, opts ...vellum.DescOption) *vellum.Descriptor {
	return vellum.NewDescriptor(KindBadge, append([]vellum.DescOption{vellum.WithText(text)}, opts...)...)
}

// Divider creates a thin horizontal rule.
func Divider() *vellum.Descriptor {
	return vellum.NewDescriptor(KindDivider)
}

// Image creates an image descriptor. The ref passes through to the
// host's rasterization stack unopened.
func Image(ref string, opts ...vellum.DescOption) *vellum.Descriptor {
	return vellum.NewDescriptor(KindImage, append([]vellum.DescOption{vellum.WithImage(ref)}, opts...)...)
}

// List creates a column of rows.
func List(rows ...*vellum.Descriptor) *vellum.Descriptor {
	return vellum.NewDescriptor(KindList, vellum.WithChildren(rows...))
}

// ListRow creates one selectable row. Key the row when list contents
// are dynamic so reconciliation tracks identity across reorders.
func ListRow(text string, opts ...vellum.DescOption) *vellum.Descriptor {
	base := []vellum.DescOption{vellum.WithText(text), vellum.WithFocusable()}
	return vellum.NewDescriptor(KindListRow, append(base, opts...)...)
}
