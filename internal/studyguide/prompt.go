package studyguide

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study-guide writer for a certification exam
preparation platform.

Write a focused, practical study guide for the requested topic. Rules:
1. Open with a short overview of why the topic matters for the exam.
2. Cover each requested focus area with concrete facts, not filler.
3. Prefer bullet points and short sections over long prose.
4. Close with 3-5 self-check questions (no answers).
5. Output plain Markdown, no code fences around the whole document.`

func buildUserPrompt(topic string, weakAreas []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if len(weakAreas) > 0 {
		fmt.Fprintf(&b, "The learner has been struggling with: %s.\n", strings.Join(weakAreas, ", "))
		b.WriteString("Give these areas extra depth and worked examples.\n")
	}
	return b.String()
}
