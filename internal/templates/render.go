package templates

import "html/template"

// Parse parses the shipped views with html/template. Each view is defined
// under its path, for example "partials/tag-cloud.html".
//
// Views expect a data map with "app" (the app data, carrying tagCloud and
// tagsConfig) and "meta" (the current page's meta).
func Parse() (*template.Template, error) {
	return template.New("tags").ParseFS(FS(), "pages/*.html", "partials/*.html")
}
