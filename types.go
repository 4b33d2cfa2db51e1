package devcraft

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // absolute og:image URL, empty when the page has none
	SiteName    string
}

// StaticPage is a content-independent page of the site. Its body comes from
// <PagesDir>/<Name>.md when that file exists.
type StaticPage struct {
	Route       string
	Name        string
	Title       string
	Description string
}

// StaticPages are the fixed informational pages, in navigation order.
var StaticPages = []StaticPage{
	{
		Route:       "/about",
		Name:        "about",
		Title:       "About",
		Description: "Learn more about the blog and the mission behind sharing practical frontend knowledge.",
	},
	{
		Route:       "/contact",
		Name:        "contact",
		Title:       "Contact",
		Description: "Get in touch about articles, feedback or collaboration.",
	},
	{
		Route:       "/privacy-policy",
		Name:        "privacy-policy",
		Title:       "Privacy Policy",
		Description: "How this site handles visitor data.",
	},
	{
		Route:       "/terms",
		Name:        "terms",
		Title:       "Terms of Use",
		Description: "The terms that apply when using this site.",
	},
}

// SiteRoutes returns every route that does not depend on content: the home
// page, the blog index and the static pages.
func SiteRoutes() []string {
	routes := []string{"/", "/blog"}
	for _, p := range StaticPages {
		routes = append(routes, p.Route)
	}
	return routes
}
