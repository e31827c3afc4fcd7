package engine

// --- Prompt glue enums ---

// Tone selects the writing tone for summaries and posts.
type Tone string

const (
	ToneEducational    Tone = "educational"
	ToneInspirational  Tone = "inspirational"
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneThoughtLeader  Tone = "thought_leader"
)

// Audience selects the target audience.
type Audience string

const (
	AudienceGeneral          Audience = "general"
	AudienceTechnical        Audience = "technical"
	AudienceExecutive        Audience = "executive"
	AudienceEntryLevel       Audience = "entry_level"
	AudienceIndustrySpecific Audience = "industry_specific"
)

// Voice selects first- or third-person narration for posts.
type Voice string

const (
	VoiceFirstPerson Voice = "first_person"
	VoiceThirdPerson Voice = "third_person"
)

// --- Request types (shared by REST handlers and MCP tools) ---

type TranscriptRequest struct {
	YouTubeURL    string `json:"youtube_url" jsonschema:"URL of the YouTube video"`
	Language      string `json:"language,omitempty" jsonschema:"Language code for the transcript (default: en)"`
	YouTubeAPIKey string `json:"youtube_api_key,omitempty" jsonschema:"Optional YouTube Data API key, overrides the configured one"`
}

type SummaryRequest struct {
	Transcript string   `json:"transcript" jsonschema:"Video transcript text"`
	VideoTitle string   `json:"video_title" jsonschema:"Title of the video"`
	Tone       Tone     `json:"tone,omitempty" jsonschema:"Tone of the summary: educational, inspirational, professional, conversational, thought_leader"`
	Audience   Audience `json:"audience,omitempty" jsonschema:"Target audience: general, technical, executive, entry_level, industry_specific"`
	MaxLength  int      `json:"max_length,omitempty" jsonschema:"Maximum summary length in words (default: 250)"`
	MinLength  int      `json:"min_length,omitempty" jsonschema:"Minimum summary length in words (default: 150)"`
	LLMAPIKey  string   `json:"llm_api_key,omitempty" jsonschema:"Optional LLM API key, overrides the configured one"`
}

type PostRequest struct {
	Summary             string   `json:"summary" jsonschema:"Video summary"`
	VideoTitle          string   `json:"video_title" jsonschema:"Title of the video"`
	VideoURL            string   `json:"video_url" jsonschema:"URL of the YouTube video"`
	SpeakerName         string   `json:"speaker_name,omitempty" jsonschema:"Name of the speaker in the video"`
	Hashtags            []string `json:"hashtags,omitempty" jsonschema:"Hashtags to include in the post"`
	Tone                Tone     `json:"tone,omitempty" jsonschema:"Tone of the post"`
	Voice               Voice    `json:"voice,omitempty" jsonschema:"Voice of the post: first_person or third_person"`
	Audience            Audience `json:"audience,omitempty" jsonschema:"Target audience"`
	IncludeCallToAction *bool    `json:"include_call_to_action,omitempty" jsonschema:"Include a soft call to action (default: true)"`
	MaxLength           int      `json:"max_length,omitempty" jsonschema:"Maximum post length in characters (default: 1200)"`
	LLMAPIKey           string   `json:"llm_api_key,omitempty" jsonschema:"Optional LLM API key, overrides the configured one"`
}

type OutputRequest struct {
	PostContent string `json:"post_content" jsonschema:"LinkedIn post content"`
	Format      string `json:"format,omitempty" jsonschema:"Output format: json or text (default: json)"`
}

// --- Response types ---

type TranscriptResponse struct {
	VideoID         string `json:"video_id"`
	VideoTitle      string `json:"video_title"`
	Transcript      string `json:"transcript"`
	Language        string `json:"language"`
	DurationSeconds int    `json:"duration_seconds"`
	ChannelName     string `json:"channel_name,omitempty"`
	PublishedAt     string `json:"published_at,omitempty"`
	Error           string `json:"error,omitempty"`
}

type SummaryResponse struct {
	Summary   string   `json:"summary"`
	WordCount int      `json:"word_count"`
	KeyPoints []string `json:"key_points"`
	Error     string   `json:"error,omitempty"`
}

type PostResponse struct {
	PostContent       string   `json:"post_content"`
	CharacterCount    int      `json:"character_count"`
	EstimatedReadTime string   `json:"estimated_read_time"`
	HashtagsUsed      []string `json:"hashtags_used"`
	Error             string   `json:"error,omitempty"`
}

type OutputResponse struct {
	Content any    `json:"content"`
	Format  string `json:"format"`
	Error   string `json:"error,omitempty"`
}

// VideoMetadata is what the Data API reports about a video. Passed through
// to the transcript response unchanged.
type VideoMetadata struct {
	VideoID         string
	Title           string
	ChannelName     string
	DurationSeconds int
	PublishedAt     string
}

// Defaults applied when request fields are zero.
const (
	DefaultLanguage         = "en"
	DefaultSummaryMinLength = 150
	DefaultSummaryMaxLength = 250
	DefaultPostMaxLength    = 1200
)

// WithDefaults fills zero fields with their documented defaults.
func (r SummaryRequest) WithDefaults() SummaryRequest {
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
	if r.Audience == "" {
		r.Audience = AudienceGeneral
	}
	if r.MinLength <= 0 {
		r.MinLength = DefaultSummaryMinLength
	}
	if r.MaxLength <= 0 {
		r.MaxLength = DefaultSummaryMaxLength
	}
	return r
}

// WithDefaults fills zero fields with their documented defaults.
func (r PostRequest) WithDefaults() PostRequest {
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
	if r.Voice == "" {
		r.Voice = VoiceFirstPerson
	}
	if r.Audience == "" {
		r.Audience = AudienceGeneral
	}
	if r.MaxLength <= 0 {
		r.MaxLength = DefaultPostMaxLength
	}
	return r
}

// CallToAction reports the include_call_to_action flag, defaulting to true.
func (r PostRequest) CallToAction() bool {
	return r.IncludeCallToAction == nil || *r.IncludeCallToAction
}

// Valid reports whether t is a known tone tag. Empty is valid, it means
// "use the default".
func (t Tone) Valid() bool {
	switch t {
	case "", ToneEducational, ToneInspirational, ToneProfessional, ToneConversational, ToneThoughtLeader:
		return true
	}
	return false
}

// Valid reports whether a is a known audience tag.
func (a Audience) Valid() bool {
	switch a {
	case "", AudienceGeneral, AudienceTechnical, AudienceExecutive, AudienceEntryLevel, AudienceIndustrySpecific:
		return true
	}
	return false
}

// Valid reports whether v is a known voice tag.
func (v Voice) Valid() bool {
	switch v {
	case "", VoiceFirstPerson, VoiceThirdPerson:
		return true
	}
	return false
}
