package groq

import "fmt"

// Message represents a Groq chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `You are a professional email writer specializing in cold outreach for job applications.
Create a personalized, concise, and compelling cold email that:
1. Demonstrates knowledge of the company and role
2. Highlights relevant skills from the resume
3. Shows genuine interest in the position
4. Maintains a professional yet warm tone
5. Keeps the email to 3-4 paragraphs max`

// BuildPrompt creates the two chat messages for a cold email request: the
// fixed system instruction and a user message carrying the verbatim job
// description and resume text.
func BuildPrompt(jobDescription, resumeText string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(jobDescription, resumeText)},
	}
}

func buildUserPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf("Job Description:\n%s\n\nMy Resume:\n%s", jobDescription, resumeText)
}
