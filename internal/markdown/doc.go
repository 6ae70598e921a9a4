// Package markdown handles file-based recipe workflows: parsing frontmatter,
// rendering Markdown to HTML with goldmark, discovering recipe files on disk,
// and importing them into the catalog.
package markdown
