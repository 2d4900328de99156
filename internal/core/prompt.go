package core

// SystemPrompt is prepended to every email before it is sent to the model
const SystemPrompt = `
You are required to read an e-mail received by a user and decide whether it is spam or phishing.
Your output must be a JSON object with the following structure:
{
    "subject": "subject of the e-mail in a few words, as a string",
    "is_spam": true or false,
    "email_content": "the content of the e-mail, as a string",
    "confidence": a number between 0 and 1 representing the confidence of the spam detection,
    "time_detected": "time in Brazilian time (BRT) when the spam detection was made, as a string"
}
Your output must be a valid JSON object and nothing else (no text, no markdown, no code block).
`

// BuildPrompt returns the full prompt sent to the model for the given email content
func BuildPrompt(emailContent string) string {
	return SystemPrompt + "\n\nEmail:\n" + emailContent
}
