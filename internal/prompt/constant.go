package prompt

const (
	MinMinutes     = 5
	MaxMinutes     = 480
	DefaultMinutes = 30
	MaxSubtasks    = 3
)

// SystemInstruction is sent as the system prompt with every structured request.
const SystemInstruction = `You are a task planning assistant inside a personal to-do app.

RULES:
1. Respond with exactly one JSON object. No markdown, no code fences, no text before or after it.
2. Use only the information given. Do not speculate about the user's health, finances, relationships or other private circumstances.
3. Never produce harmful, dangerous or deceptive content. If a task asks for it, answer with neutral defaults.
4. Keep reasoning to one short sentence.`

const durationExamples = `EXAMPLES (shape only, do not copy values):
Task: "Write quarterly report"
{"estimated_minutes": 120, "confidence": "medium", "reasoning": "Reports need drafting and review."}

Task: "Call the dentist"
{"estimated_minutes": 10, "confidence": "high", "reasoning": "A short phone call."}`

const durationSchema = `RESPONSE SCHEMA:
- estimated_minutes: integer between 5 and 480
- confidence: exactly one of "low", "medium", "high"
- reasoning: string`

const priorityExamples = `EXAMPLES (shape only, do not copy values):
Task: "Pay rent" (due tomorrow)
{"priority": "high", "reasoning": "Due very soon with late fees."}

Task: "Browse new recipes"
{"priority": "low", "reasoning": "Optional with no deadline."}

Task: "Renew passport" (due in 2 months)
{"priority": "medium", "reasoning": "Important but not urgent yet."}`

const prioritySchema = `RESPONSE SCHEMA:
- priority: exactly one of "none", "low", "medium", "high"
- reasoning: string`

const orderExamples = `EXAMPLES (shape only, do not copy values):
Tasks: 1. "Buy milk"  2. "Submit tax return" (due today)  3. "Plan vacation"
{"order": [2, 1, 3], "reasoning": "The deadline comes first, then the quick errand."}

Tasks: 1. "Reply to Sam"  2. "Clean garage"
{"order": [1, 2], "reasoning": "Quick reply before the long chore."}`

const orderSchema = `RESPONSE SCHEMA:
- order: array containing every task number from the list exactly once, most important first
- reasoning: string`

const analysisExamples = `EXAMPLES (shape only, do not copy values):
Task: "prep slides for monday sync"
{"estimated_minutes": 90, "suggested_priority": "high", "best_time_of_day": "morning", "category": "work", "proposed_new_category": null, "subtasks": ["Outline key points", "Build slides", "Rehearse once"], "tips": ["Reuse last week's template"], "refined_title": "Prepare slides for Monday sync", "suggested_description": null}

Task: "food bank shift"
{"estimated_minutes": 180, "suggested_priority": "medium", "best_time_of_day": "afternoon", "category": "uncategorized", "proposed_new_category": "Volunteering", "subtasks": [], "tips": ["Bring closed-toe shoes"], "refined_title": null, "suggested_description": "Volunteer shift at the local food bank."}`

const analysisSchema = `RESPONSE SCHEMA:
- estimated_minutes: integer between 5 and 480
- suggested_priority: exactly one of "none", "low", "medium", "high"
- best_time_of_day: exactly one of "morning", "afternoon", "evening", "anytime"
- category: one of the category names listed above, or "uncategorized"
- proposed_new_category: string or null; only when no listed category fits
- subtasks: array of at most 3 short strings
- tips: array of short strings
- refined_title: string or null; only when the title can be clearer
- suggested_description: string or null`
