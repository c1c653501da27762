package contextpack

import "sort"

// File is a candidate for prompt context.
type File struct {
	Path         string `json:"path"`
	RelativePath string `json:"relativePath"`
	Content      string `json:"content"`
}

// SelectedFile is a File chosen by the packer, annotated with its estimated
// token count and priority. Content may be a truncated copy of the input.
type SelectedFile struct {
	File
	Tokens   int `json:"tokens"`
	Priority int `json:"priority"`
}

// Result is the outcome of one packing run.
type Result struct {
	Files        []SelectedFile `json:"files"`
	TotalTokens  int            `json:"totalTokens"`
	Truncated    bool           `json:"truncated"`
	DroppedFiles []string       `json:"droppedFiles"`
}

const (
	// fillGuard stops truncating once the budget is 90% full; squeezing a
	// fragment into the last sliver is worse than dropping the file.
	fillGuard = 0.9
	// minTruncateTokens is the smallest remaining budget worth a truncated
	// inclusion.
	minTruncateTokens = 500
	// markerReserve leaves room for the truncation marker and the rounding
	// error of the token estimate.
	markerReserve = 100
)

// Optimize selects and possibly truncates files to fit a token budget,
// highest priority first. The input slice is never modified. reserveTokens is
// subtracted from the budget up front to leave headroom for the prompt and
// response; pass DefaultReserveTokens unless the caller has better
// information.
//
// A reserve at or above the budget is not an error: the available budget goes
// negative and every file is dropped.
func Optimize(files []File, budgetTokens, reserveTokens int) Result {
	availableTokens := budgetTokens - reserveTokens

	scored := make([]SelectedFile, len(files))
	for i, f := range files {
		scored[i] = SelectedFile{
			File:     f,
			Tokens:   EstimateTokens(f.Content),
			Priority: PriorityFor(f.RelativePath),
		}
	}

	// Stable: files of equal priority keep their input order, so packing is
	// deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Priority > scored[j].Priority
	})

	result := Result{
		Files:        []SelectedFile{},
		DroppedFiles: []string{},
	}

	for _, f := range scored {
		remaining := availableTokens - result.TotalTokens
		switch {
		case f.Tokens <= remaining:
			result.Files = append(result.Files, f)
			result.TotalTokens += f.Tokens

		case float64(result.TotalTokens) < float64(availableTokens)*fillGuard && remaining > minTruncateTokens:
			f.Content = TruncateToTokens(f.Content, remaining-markerReserve)
			f.Tokens = EstimateTokens(f.Content)
			result.Files = append(result.Files, f)
			result.TotalTokens += f.Tokens

		default:
			result.DroppedFiles = append(result.DroppedFiles, f.RelativePath)
		}
	}

	result.Truncated = len(result.DroppedFiles) > 0
	return result
}

// OptimizeForAgent packs files against the budget ceiling for an agent role,
// using the default reserve.
func OptimizeForAgent(files []File, agentType string) Result {
	return Optimize(files, AgentBudget(agentType), DefaultReserveTokens)
}
