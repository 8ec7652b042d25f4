package dto

import (
	"regexp"
	"strings"
	"time"
	"zentravel/internal/domains/oracle/model"
)

// boldMarker matches a **keyword** span. Unclosed markers are left as
// literal text.
var boldMarker = regexp.MustCompile(`\*\*[^*]+\*\*`)

// Segment is one run of reply text. Bold runs have their markers stripped;
// the concatenation of all segment texts plus markers reproduces the raw
// reply.
type Segment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Segments splits a reply on **bold** markers for rendering. Line breaks
// stay literal inside the segment text.
func Segments(text string) []Segment {
	var segments []Segment

	rest := text

	for {
		loc := boldMarker.FindStringIndex(rest)
		if loc == nil {
			break
		}

		if loc[0] > 0 {
			segments = append(segments, Segment{Text: rest[:loc[0]]})
		}

		segments = append(segments, Segment{
			Text: strings.Trim(rest[loc[0]:loc[1]], "*"),
			Bold: true,
		})

		rest = rest[loc[1]:]
	}

	if rest != "" || len(segments) == 0 {
		segments = append(segments, Segment{Text: rest})
	}

	return segments
}

type MessageResponse struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Segments  []Segment `json:"segments"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *MessageResponse) FromModel(message model.Message) {
	r.Role = message.Role
	r.Text = message.Text
	r.Segments = Segments(message.Text)
	r.Timestamp = message.Timestamp
}

type StartSessionResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []MessageResponse `json:"messages"`
}

type SendRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type SendResponse struct {
	SessionID string          `json:"session_id"`
	Reply     MessageResponse `json:"reply"`
}

type TranscriptResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []MessageResponse `json:"messages"`
}

func (r *TranscriptResponse) FromModels(sessionID string, messages []model.Message) {
	r.SessionID = sessionID
	r.Messages = make([]MessageResponse, len(messages))

	for i, message := range messages {
		r.Messages[i].FromModel(message)
	}
}
