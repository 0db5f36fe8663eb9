package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"go-hrms/internal/requesttype"
	"go-hrms/internal/shared/dateutil"

	"gorm.io/datatypes"
)

const maxAttachments = 10

// Payload is the category-specific part of a request. Each category has exactly one shape.
type Payload interface {
	Category() requesttype.Category
	Validate() error
}

type TimeOffPayload struct {
	RequestDisplayID string   `json:"request_display_id,omitempty"`
	AttachmentURLs   []string `json:"attachment_urls,omitempty"`
}

func (TimeOffPayload) Category() requesttype.Category { return requesttype.CategoryTimeOff }

func (p TimeOffPayload) Validate() error {
	if len(p.AttachmentURLs) > maxAttachments {
		return fmt.Errorf("at most %d attachments are allowed", maxAttachments)
	}
	for _, raw := range p.AttachmentURLs {
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("attachment url %q is not an absolute url", raw)
		}
	}
	return nil
}

type FieldChange struct {
	Field    string  `json:"field"`
	OldValue *string `json:"old_value,omitempty"`
	NewValue string  `json:"new_value"`
}

type ProfileChangePayload struct {
	Changes []FieldChange `json:"changes"`
}

func (ProfileChangePayload) Category() requesttype.Category { return requesttype.CategoryProfile }

func (p ProfileChangePayload) Validate() error {
	if len(p.Changes) == 0 {
		return errors.New("at least one field change is required")
	}
	seen := make(map[string]struct{}, len(p.Changes))
	for _, c := range p.Changes {
		field := strings.TrimSpace(c.Field)
		if field == "" {
			return errors.New("field name is required")
		}
		if _, dup := seen[field]; dup {
			return fmt.Errorf("field %q is changed twice", field)
		}
		seen[field] = struct{}{}
		if strings.TrimSpace(c.NewValue) == "" {
			return fmt.Errorf("new value for %q is required", field)
		}
	}
	return nil
}

// TimesheetPayload is written by the timesheet workflow; clients never send it.
type TimesheetPayload struct {
	WeekStartDate string `json:"week_start_date"`
	TotalHours    string `json:"total_hours"`
	EntryCount    int    `json:"entry_count"`
}

func (TimesheetPayload) Category() requesttype.Category { return requesttype.CategoryTimesheet }

func (p TimesheetPayload) Validate() error {
	if _, err := dateutil.ParseDate(p.WeekStartDate); err != nil {
		return errors.New("week_start_date must be YYYY-MM-DD")
	}
	return nil
}

// OtherPayload is free-form for request types without a dedicated schema.
type OtherPayload map[string]any

func (OtherPayload) Category() requesttype.Category { return requesttype.CategoryOther }

func (OtherPayload) Validate() error { return nil }

// DecodePayload parses raw into the payload type of category. An empty body yields the
// zero payload. Unknown fields are refused for every category except other.
func DecodePayload(category requesttype.Category, raw []byte) (Payload, error) {
	raw = bytes.TrimSpace(raw)
	empty := len(raw) == 0 || bytes.Equal(raw, []byte("null"))

	var p Payload
	switch category {
	case requesttype.CategoryTimeOff:
		var v TimeOffPayload
		if !empty {
			if err := strictUnmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		p = v
	case requesttype.CategoryProfile:
		var v ProfileChangePayload
		if !empty {
			if err := strictUnmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		p = v
	case requesttype.CategoryTimesheet:
		var v TimesheetPayload
		if !empty {
			if err := strictUnmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		p = v
	case requesttype.CategoryOther:
		v := OtherPayload{}
		if !empty {
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, errors.New("payload must be a json object")
			}
		}
		p = v
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return p, nil
}

func strictUnmarshal(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("malformed payload: unexpected data after the json object")
	}
	return nil
}

func EncodePayload(p Payload) (datatypes.JSON, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func upper(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
