package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/blogsmith"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeArticle prints an article as markdown. Inline data URLs are not
// printed since they are unreadable in a terminal.
func writeArticle(w io.Writer, i int, a blogsmith.Article) {
	fmt.Fprintf(w, "<!-- %d. %s (%s) -->\n\n", i+1, a.ID, a.Angle)
	fmt.Fprintf(w, "# %s\n\n", a.Title)
	if a.Summary != "" {
		fmt.Fprintf(w, "> %s\n\n", a.Summary)
	}
	switch {
	case strings.HasPrefix(a.ImageURL, "data:"):
		fmt.Fprintf(w, "_image: inline %s_\n\n", strings.SplitN(a.ImageURL, ";", 2)[0])
	case a.ImageURL != "":
		fmt.Fprintf(w, "![%s](%s)\n\n", a.Title, a.ImageURL)
	}
	fmt.Fprintln(w, strings.TrimSpace(a.Body))
	fmt.Fprintln(w)
}

// writePage prints the extracted fields of page.
func writePage(w io.Writer, page *blogsmith.SourcePage) {
	fmt.Fprintf(w, "Title:       %s\n", page.Title)
	fmt.Fprintf(w, "URL:         %s\n", page.URL)
	if page.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", page.Description)
	}
	if len(page.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords:    %s\n", strings.Join(page.Keywords, ", "))
	}
	fmt.Fprintf(w, "Length:      %d characters\n\n", blogsmith.RuneLen(page.Body))
	fmt.Fprintln(w, page.Body)
}
