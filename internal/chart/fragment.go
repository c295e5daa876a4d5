package chart

import (
	"fmt"
	"html/template"

	gerender "github.com/go-echarts/go-echarts/v2/render"
)

// AssetsHost serves echarts.min.js; pages include it once in their head.
const AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// snippetRenderer is satisfied by every go-echarts chart. RenderSnippet runs
// the chart's Validate hook, which fills axis data set through SetXAxis.
type snippetRenderer interface {
	RenderSnippet() gerender.ChartSnippet
}

// render turns a chart into an embeddable element plus its init script.
// Chart ids end up in JavaScript identifiers, so they must not contain '-'.
// A chart that fails to render degrades to an empty container.
func render(id string, c snippetRenderer) (out template.HTML) {
	defer func() {
		if recover() != nil {
			out = template.HTML(fmt.Sprintf(`<div class="container"><div class="item" id="%s"></div></div>`, template.HTMLEscapeString(id)))
		}
	}()

	snippet := c.RenderSnippet()
	return template.HTML(snippet.Element + "\n" + snippet.Script)
}
