package contextpack

import (
	"fmt"
	"path"
	"strings"
)

// maxDroppedListed caps how many dropped paths the omission note names.
const maxDroppedListed = 5

// Format renders a packing result as markdown for inclusion in a prompt.
// Each file becomes a fenced code block headed by its relative path, with the
// file extension as the language tag. When files were dropped, a trailing
// note names up to five of them so the model knows the context is partial.
func Format(result Result) string {
	var b strings.Builder

	for _, f := range result.Files {
		lang := strings.TrimPrefix(path.Ext(f.RelativePath), ".")
		if lang == "" {
			lang = "text"
		}
		fmt.Fprintf(&b, "### %s\n\n```%s\n%s\n```\n\n", f.RelativePath, lang, f.Content)
	}

	if len(result.DroppedFiles) > 0 {
		listed := result.DroppedFiles
		ellipsis := ""
		if len(listed) > maxDroppedListed {
			listed = listed[:maxDroppedListed]
			ellipsis = ", ..."
		}
		fmt.Fprintf(&b, "_Note: %d file(s) omitted to fit the context budget: %s%s_\n",
			len(result.DroppedFiles), strings.Join(listed, ", "), ellipsis)
	}

	return b.String()
}
