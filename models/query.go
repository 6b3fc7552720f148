package models

import "sort"

// FilterIssues returns the subset of issues matching both the status and the
// category filter. "all" (or empty) leaves that dimension unconstrained. The
// input slice is never modified.
func FilterIssues(issues []Issue, status, category string) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if status != "" && status != "all" && string(issue.Status) != status {
			continue
		}
		if category != "" && category != "all" && string(issue.Category) != category {
			continue
		}
		out = append(out, issue)
	}
	return out
}

// SortIssuesByCreatedAt returns a copy ordered by creation time, newest first
// or oldest first. The sort is stable so ties keep their enumeration order.
func SortIssuesByCreatedAt(issues []Issue, newestFirst bool) []Issue {
	out := make([]Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		if newestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
