package prompt

import (
	"strings"
	"time"

	"task-intelligence/internal/model"
)

// RenderAnalysis builds the full-analysis prompt with the category vocabulary.
func RenderAnalysis(task TaskInput, custom []model.CustomCategory, learned string, now time.Time) string {
	var b strings.Builder
	writeLearned(&b, learned)
	b.WriteString("Analyze the following task and help the user plan it.\n\nTASK:\n")
	writeTask(&b, task, now)

	b.WriteString("\nCATEGORIES:\n")
	for _, c := range model.BuiltInCategories {
		b.WriteString("- ")
		b.WriteString(string(c))
		b.WriteString("\n")
	}
	for _, c := range custom {
		b.WriteString("- ")
		b.WriteString(c.Name)
		b.WriteString("\n")
	}
	b.WriteString("Use a listed category name exactly as written. If none fits, set category to \"uncategorized\" ")
	b.WriteString("and you may propose a short new category name in proposed_new_category.\n")

	writeTail(&b, analysisExamples, analysisSchema)
	return b.String()
}

// ParseAnalysis never fails and always returns an Analysis within bounds.
func ParseAnalysis(reply string, custom []model.CustomCategory) Analysis {
	out := DefaultAnalysis()

	obj, ok := extractObject(reply)
	if !ok {
		return out
	}
	out.Defaulted = false

	if n, ok := intField(obj, "estimated_minutes"); ok {
		out.EstimatedMinutes = n
	}
	out.EstimatedMinutes = ClampMinutes(out.EstimatedMinutes)

	if p, ok := model.ParsePriority(enumField(obj, "suggested_priority")); ok {
		out.SuggestedPriority = p
	}
	if t, ok := model.ParseTimeOfDay(enumField(obj, "best_time_of_day")); ok {
		out.BestTimeOfDay = t
	}

	if name, ok := stringField(obj, "category"); ok {
		resolveCategory(&out, name, custom)
	}
	if proposed, ok := stringField(obj, "proposed_new_category"); ok && !hasCategory(out) {
		// a proposal naming something that already exists is that category
		resolveCategory(&out, proposed, custom)
		if !hasCategory(out) {
			out.ProposedNewCategory = proposed
		}
	}

	out.Subtasks = stringList(obj, "subtasks")
	if len(out.Subtasks) > MaxSubtasks {
		out.Subtasks = out.Subtasks[:MaxSubtasks]
	}
	out.Tips = stringList(obj, "tips")
	out.RefinedTitle, _ = stringField(obj, "refined_title")
	out.SuggestedDescription, _ = stringField(obj, "suggested_description")
	return out
}

// resolveCategory maps built-in keys 1:1 and custom names by exact, case-sensitive match.
func resolveCategory(a *Analysis, name string, custom []model.CustomCategory) {
	if c, ok := model.ParseCategory(name); ok {
		a.Category = c
		return
	}
	for _, c := range custom {
		if c.Name == name {
			a.Category = model.CategoryUncategorized
			a.CustomCategoryID = c.ID
			a.CustomCategoryName = c.Name
			return
		}
	}
}

func hasCategory(a Analysis) bool {
	return a.CustomCategoryID != "" || (a.Category != "" && a.Category != model.CategoryUncategorized)
}
