package contextpack

import "path"

// DefaultPriority is assigned to files no rule matches.
const DefaultPriority = 50

// Rule assigns a priority to files by base name or name suffix. Exactly one
// of Name and Suffix is set. Rules are evaluated in order; the first match
// wins, so suffix rules must be ordered most-specific first (.test.ts before
// .ts).
type Rule struct {
	Name     string
	Suffix   string
	Priority int
}

// DefaultRules is the priority table used by Optimize. Project manifests and
// agent instructions rank highest, generated-looking and prose files lowest.
var DefaultRules = []Rule{
	{Name: "package.json", Priority: 100},
	{Name: "CLAUDE.md", Priority: 95},
	{Name: "index.ts", Priority: 85},
	{Name: "main.ts", Priority: 85},
	{Name: "index.tsx", Priority: 85},
	{Name: "main.tsx", Priority: 85},
	{Name: "README.md", Priority: 80},
	{Name: "tsconfig.json", Priority: 75},
	{Name: "vite.config.ts", Priority: 70},
	{Name: ".env.example", Priority: 55},

	{Suffix: ".test.ts", Priority: 40},
	{Suffix: ".spec.ts", Priority: 40},
	{Suffix: ".test.tsx", Priority: 40},
	{Suffix: ".tsx", Priority: 65},
	{Suffix: ".ts", Priority: 60},
	{Suffix: ".json", Priority: 35},
	{Suffix: ".md", Priority: 30},
}

// PriorityFor returns the packing priority for a file's relative path using
// DefaultRules.
func PriorityFor(relativePath string) int {
	return priorityFor(relativePath, DefaultRules)
}

func priorityFor(relativePath string, rules []Rule) int {
	base := path.Base(relativePath)
	for _, rule := range rules {
		if rule.Name != "" {
			if base == rule.Name {
				return rule.Priority
			}
			continue
		}
		if len(base) > len(rule.Suffix) && base[len(base)-len(rule.Suffix):] == rule.Suffix {
			return rule.Priority
		}
	}
	return DefaultPriority
}
