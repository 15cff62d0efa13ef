package components

// NavLink is one entry of the top navigation bar
type NavLink struct {
	Href  string
	Label string
}

// DefaultNav is the navigation shown on every page
var DefaultNav = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/products", Label: "Products"},
}
