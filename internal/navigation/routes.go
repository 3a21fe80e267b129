package navigation

import (
	"path"
	"strings"
)

type Meta struct {
	Title string
}

type Route struct {
	Path     string
	Name     string
	Meta     Meta
	Children []Route
}

// Table is a flattened route tree. Only routes with a name are navigable;
// unnamed routes act as layouts for their children.
type Table struct {
	routes []Route
}

// DefaultRoutes is the site's route tree: a layout at "/" holding the home
// and utilities pages.
func DefaultRoutes() []Route {
	return []Route{
		{
			Path: "/",
			Children: []Route{
				{Path: "", Name: "home", Meta: Meta{Title: ""}},
				{Path: "/utils", Name: "utils", Meta: Meta{Title: "小工具"}},
			},
		},
	}
}

func NewTable(routes []Route) *Table {
	t := &Table{}
	t.add("", routes)
	return t
}

func (t *Table) add(parent string, routes []Route) {
	for _, r := range routes {
		full := joinPath(parent, r.Path)
		if r.Name != "" {
			t.routes = append(t.routes, Route{Path: full, Name: r.Name, Meta: r.Meta})
		}
		t.add(full, r.Children)
	}
}

// Routes returns the navigable routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Resolve matches p against the table. Matching ignores case, a trailing
// slash and any query or fragment.
func (t *Table) Resolve(p string) (Route, bool) {
	p = Normalize(p)
	for _, r := range t.routes {
		if strings.EqualFold(r.Path, p) {
			return r, true
		}
	}
	return Route{}, false
}

func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

func joinPath(parent, child string) string {
	if strings.HasPrefix(child, "/") {
		return path.Clean(child)
	}
	if parent == "" {
		return path.Clean("/" + child)
	}
	return path.Clean(parent + "/" + child)
}
