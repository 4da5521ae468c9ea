package compose

// Fragment constructors keep the section builders terse.

func text(s string) Fragment {
	return Fragment{Kind: FragmentText, Text: s}
}

func blank(field, value string) Fragment {
	return Fragment{Kind: FragmentBlank, Field: field, Value: value}
}

func checkbox(checked bool) Fragment {
	return Fragment{Kind: FragmentCheckbox, Checked: checked}
}

func squarebox(checked bool) Fragment {
	return Fragment{Kind: FragmentSquareBox, Checked: checked}
}

func image(asset, value string) Fragment {
	return Fragment{Kind: FragmentImage, Asset: asset, Value: value}
}

func line(fragments ...Fragment) Line {
	return Line{Fragments: fragments}
}

func section(kind SectionKind, lines ...Line) Section {
	return Section{Kind: kind, Lines: lines}
}
