package domain

import "time"

// TranscriptRecord is a transcript-processing document as returned by the
// search index. Every field is optional: absence degrades to an empty
// value at the normalisation boundary, never an error.
type TranscriptRecord struct {
	// ImageName is the uploaded image file name.
	ImageName *string `json:"image_name,omitempty"`

	// Request carries the originating request metadata.
	Request *RequestInfo `json:"request,omitempty"`

	// UploadedBy is the display name of the uploader.
	UploadedBy *string `json:"uploaded_by,omitempty"`

	// FinalReviewer is the display name of the final reviewer.
	FinalReviewer *string `json:"final_reviewer,omitempty"`

	// ProcessedBy is the display name of the processor.
	ProcessedBy *string `json:"processed_by,omitempty"`

	// UploadedDate is the upload instant as an ISO-8601 string.
	UploadedDate *string `json:"uploaded_date,omitempty"`

	// ProcessedOn is the processing instant as an ISO-8601 string.
	ProcessedOn *string `json:"processed_on,omitempty"`

	// Status is the latest processing status.
	Status *string `json:"status,omitempty"`

	// InstitutionName is the owning institution.
	InstitutionName *string `json:"institution_name,omitempty"`

	// Pages is the page count.
	Pages *int `json:"pages,omitempty"`

	// ConfidenceScore is the OCR confidence score.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`

	// ReviewerHandleTime is the reviewer handle time in seconds.
	ReviewerHandleTime *float64 `json:"reviewer_handle_time,omitempty"`

	// ValidatorHandleTime is the validator handle time in seconds.
	ValidatorHandleTime *float64 `json:"validator_handle_time,omitempty"`
}

// RequestInfo is the nested request metadata on a transcript document.
type RequestInfo struct {
	// Agent is the client/agent tag the upload came through.
	Agent *string `json:"agent,omitempty"`
}

// AgentTag returns the client/agent tag, or "" when absent.
func (r TranscriptRecord) AgentTag() string {
	if r.Request == nil || r.Request.Agent == nil {
		return ""
	}
	return *r.Request.Agent
}

// UploadedAt parses the upload timestamp.
// The second return is false when the field is absent or unparseable.
func (r TranscriptRecord) UploadedAt() (time.Time, bool) {
	return parseInstant(r.UploadedDate)
}

// ProcessedAt parses the processing timestamp.
// The second return is false when the field is absent or unparseable.
func (r TranscriptRecord) ProcessedAt() (time.Time, bool) {
	return parseInstant(r.ProcessedOn)
}

// instantLayouts are the timestamp shapes seen in the index. Documents are
// written by several producers and are not consistent about fractional
// seconds or zone suffixes.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseInstant(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
