package utils

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownToHTML converte Markdown (com tabelas) em um fragmento HTML.
// Cada chamada usa um parser novo, pois o parser do gomarkdown guarda estado.
func MarkdownToHTML(md string) string {
	if md == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})

	return string(markdown.ToHTML([]byte(md), p, renderer))
}
