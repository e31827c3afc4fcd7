package engine

import (
	"fmt"
	"strings"
)

// LLM prompt templates and the enum → description tables that feed them.

const (
	summarySystemPrompt = "You are a professional content summarizer that creates concise, insightful summaries of video transcripts."
	postSystemPrompt    = "You are a professional content creator specializing in LinkedIn posts that drive engagement."
)

var toneDescriptions = map[Tone]string{
	ToneEducational:    "educational and informative",
	ToneInspirational:  "inspirational and motivational",
	ToneProfessional:   "professional and authoritative",
	ToneConversational: "conversational and approachable",
	ToneThoughtLeader:  "thought-provoking and visionary",
}

var summaryAudienceDescriptions = map[Audience]string{
	AudienceGeneral:          "general audience with varied backgrounds",
	AudienceTechnical:        "technical professionals with domain expertise",
	AudienceExecutive:        "business executives and decision-makers",
	AudienceEntryLevel:       "beginners and those new to the field",
	AudienceIndustrySpecific: "industry professionals with specific domain knowledge",
}

var postAudienceDescriptions = map[Audience]string{
	AudienceGeneral:          "general professionals on LinkedIn",
	AudienceTechnical:        "technical professionals and specialists",
	AudienceExecutive:        "executives and decision-makers",
	AudienceEntryLevel:       "professionals new to the field",
	AudienceIndustrySpecific: "industry-specific professionals",
}

var voiceDescriptions = map[Voice]string{
	VoiceFirstPerson: "first-person (using I, we, my, our)",
	VoiceThirdPerson: "third-person (objective, reporting style)",
}

func describeTone(t Tone) string {
	if d, ok := toneDescriptions[t]; ok {
		return d
	}
	return toneDescriptions[ToneProfessional]
}

const summaryPromptTemplate = `I need you to create a concise summary of a YouTube video based on its transcript.

Video Title: %s

Please create:
1. A summary between %d and %d words that captures the main points and insights from the video.
2. A list of 3-5 key points or takeaways from the video.

The summary should be:
- Tone: %s
- Target Audience: %s
- Well-structured with clear paragraphs
- Focused on the most valuable insights
- Free of redundant information

Format your response as:

SUMMARY:
[Your summary here]

KEY POINTS:
- [Key point 1]
- [Key point 2]
- [Key point 3]
- [Key point 4]
- [Key point 5]

Here is the transcript:
%s`

// BuildSummaryPrompt renders the summarization prompt. The transcript is
// capped to keep the request inside model context limits.
func BuildSummaryPrompt(r SummaryRequest) string {
	audience, ok := summaryAudienceDescriptions[r.Audience]
	if !ok {
		audience = summaryAudienceDescriptions[AudienceGeneral]
	}
	transcript := TruncateRunes(r.Transcript, cfg.MaxPromptChars, "...")
	return fmt.Sprintf(summaryPromptTemplate,
		r.VideoTitle, r.MinLength, r.MaxLength,
		describeTone(r.Tone), audience, transcript)
}

const postPromptTemplate = `Create an engaging LinkedIn post based on a YouTube video summary.

Video Title: %s
Video URL: %s
%s
Post requirements:
- Maximum length: %d characters (LinkedIn optimal length)
- Tone: %s
- Voice: %s
- Target Audience: %s
- Structure: Start with an engaging hook, share insights from the video, and end with a thought-provoking question or call to action
- Format: Use line breaks and emojis appropriately to make the post visually appealing and easy to read
- Include the video URL somewhere in the post
%s

Here is the summary of the video:
%s

Create a LinkedIn post that feels authentic, valuable, and encourages engagement.`

// BuildPostPrompt renders the post generation prompt.
func BuildPostPrompt(r PostRequest) string {
	audience, ok := postAudienceDescriptions[r.Audience]
	if !ok {
		audience = postAudienceDescriptions[AudienceGeneral]
	}
	voice, ok := voiceDescriptions[r.Voice]
	if !ok {
		voice = voiceDescriptions[VoiceFirstPerson]
	}

	speaker := ""
	if r.SpeakerName != "" {
		speaker = fmt.Sprintf("The speaker/creator of the video is: %s\n", r.SpeakerName)
	}

	var extras []string
	if len(r.Hashtags) > 0 {
		tags := make([]string, 0, len(r.Hashtags))
		for _, tag := range r.Hashtags {
			tags = append(tags, "#"+strings.Trim(tag, "#"))
		}
		extras = append(extras, "Include these hashtags in your post (preferably at the end): "+strings.Join(tags, ", "))
	}
	if r.CallToAction() {
		extras = append(extras, "Include a soft call to action at the end (e.g., asking for thoughts, suggesting to watch the video, etc.)")
	}

	return fmt.Sprintf(postPromptTemplate,
		r.VideoTitle, r.VideoURL, speaker,
		r.MaxLength, describeTone(r.Tone), voice, audience,
		strings.Join(extras, "\n"), r.Summary)
}
