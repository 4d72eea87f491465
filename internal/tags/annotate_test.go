package tags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/tagindex/internal/page"
)

func TestAnnotate_AddsTagLinks(t *testing.T) {
	pages := []page.Page{
		tagged("Article 1", "javascript, react"),
		tagged("Article 2", "css, design"),
		page.New("<h1>No Tags</h1>", map[string]any{"title": "No Tags"}),
	}

	got := Annotate(pages, DefaultOptions())

	want := [][]Link{
		{{Name: "javascript", Href: "/tags/javascript.html"}, {Name: "react", Href: "/tags/react.html"}},
		{{Name: "css", Href: "/tags/css.html"}, {Name: "design", Href: "/tags/design.html"}},
		{},
	}
	for i := range got {
		if diff := cmp.Diff(want[i], got[i].Meta[KeyTagLinks]); diff != "" {
			t.Errorf("page %d tagLinks mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestAnnotate_KeepsFieldOrder(t *testing.T) {
	pages := []page.Page{tagged("A", "javascript, web development, programming")}

	links := Annotate(pages, DefaultOptions())[0].Meta[KeyTagLinks].([]Link)

	assert.Equal(t, []Link{
		{Name: "javascript", Href: "/tags/javascript.html"},
		{Name: "web development", Href: "/tags/web development.html"},
		{Name: "programming", Href: "/tags/programming.html"},
	}, links)
}

func TestAnnotate_TrimsWhitespace(t *testing.T) {
	pages := []page.Page{tagged("A", "  javascript  ,   react   , vue.js   ")}

	links := Annotate(pages, DefaultOptions())[0].Meta[KeyTagLinks]

	assert.Equal(t, []Link{
		{Name: "javascript", Href: "/tags/javascript.html"},
		{Name: "react", Href: "/tags/react.html"},
		{Name: "vue.js", Href: "/tags/vue.js.html"},
	}, links)
}

func TestAnnotate_DefaultSeparatorKeepsPipes(t *testing.T) {
	pages := []page.Page{tagged("A", "tag1|tag2|tag3")}

	links := Annotate(pages, DefaultOptions())[0].Meta[KeyTagLinks].([]Link)

	assert.Len(t, links, 1)
	assert.Equal(t, "tag1|tag2|tag3", links[0].Name)
}

func TestAnnotate_PreservesMetaAndContent(t *testing.T) {
	orig := page.New("<h1>Article</h1>", map[string]any{
		"title":       "Article",
		"author":      "Jane Roe",
		"tags":        "javascript",
		"customField": "value",
	})

	got := Annotate([]page.Page{orig}, DefaultOptions())[0]

	assert.Equal(t, "<h1>Article</h1>", got.Content)
	assert.Equal(t, "Article", got.Meta["title"])
	assert.Equal(t, "Jane Roe", got.Meta["author"])
	assert.Equal(t, "value", got.Meta["customField"])
	assert.Contains(t, got.Meta, KeyTagLinks)
	assert.NotContains(t, orig.Meta, KeyTagLinks, "input page not mutated")
}
