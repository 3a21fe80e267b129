package navigation

import (
	"sync"

	"github.com/haruki1953/sakiko-utils/internal/state"
)

// Root is where unmatched navigations are sent.
const Root = "/"

type Decision struct {
	Title string
	// Route is the matched route; zero when Redirect is set.
	Route Route
	// Redirect is non-empty when navigation must go elsewhere instead.
	Redirect string
}

type Guard struct {
	table    *Table
	mu       sync.RWMutex
	siteName string
	loading  *state.LoadingWriter
}

func NewGuard(table *Table, siteName string, loading *state.LoadingWriter) *Guard {
	return &Guard{
		table:    table,
		siteName: siteName,
		loading:  loading,
	}
}

// BeforeTransition marks a navigation as in progress and decides what the
// target path renders as. Every call must be paired with AfterTransition.
func (g *Guard) BeforeTransition(target string) Decision {
	g.loading.Begin()

	route, ok := g.table.Resolve(target)
	d := Decision{Title: Title(route.Meta.Title, g.SiteName())}
	if !ok {
		d.Redirect = Root
		return d
	}
	d.Route = route
	return d
}

func (g *Guard) AfterTransition() {
	g.loading.End()
}

func (g *Guard) SiteName() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.siteName
}

func (g *Guard) SetSiteName(name string) {
	g.mu.Lock()
	g.siteName = name
	g.mu.Unlock()
}

func (g *Guard) Table() *Table {
	return g.table
}

// Title formats a document title from a route title and the site name.
func Title(routeTitle, siteName string) string {
	if routeTitle == "" {
		return siteName
	}
	return routeTitle + " | " + siteName
}
