package analysis

import (
	"fmt"
)

// promptTemplate fixes the instruction wording and the output shape the
// parser depends on. The template must stay byte-stable across calls;
// changing it silently breaks section extraction downstream.
const promptTemplate = `You are a business analyst advising a %s.
Produce a %s for the business described below.

Business description:
%s

Respond using exactly this structure, with these four headings and one
short bullet point per line. Do not add any other sections.

## Strengths
- ...

## Weaknesses
- ...

## Opportunities
- ...

## Threats
- ...`

// BuildPrompt constructs the instruction string for one request. Pure
// string construction, no error conditions.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(promptTemplate, req.Mode().Label(), req.Kind().Label(), req.Description())
}
