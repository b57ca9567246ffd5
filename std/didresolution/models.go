package didresolution

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/findy-network/findy-did-resolver/std/decorator"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// AriesTime marshals to the ISO8601 format ACA-Py emits in sent_time
// fields: space as the date/time separator. RFC3339 is accepted on
// unmarshal as well.
type AriesTime struct {
	time.Time
}

const ISO8601 = "2006-01-02 15:04:05.999999Z"

// ResolveDID asks the receiving agent to resolve the DID and reply
// with the document. Immutable once sent.
type ResolveDID struct {
	Type   string            `json:"@type,omitempty"`
	ID     string            `json:"@id,omitempty"`
	Thread *decorator.Thread `json:"~thread,omitempty"`
	L10n   decorator.L10n    `json:"~l10n,omitempty"`

	DID      string    `json:"did"`
	SentTime AriesTime `json:"sent_time"`
}

// ResolveDIDResult carries the resolved DID Document back to the
// requester. The document is opaque JSON and it is delivered to the
// waiting caller structurally intact.
type ResolveDIDResult struct {
	Type   string            `json:"@type,omitempty"`
	ID     string            `json:"@id,omitempty"`
	Thread *decorator.Thread `json:"~thread,omitempty"`
	L10n   decorator.L10n    `json:"~l10n,omitempty"`

	DIDDocument json.RawMessage `json:"did_document"`
	SentTime    AriesTime       `json:"sent_time"`
}

// ProblemReport tells the requester that the resolution could not be
// fulfilled. ExplainLongTxt is the human readable explanation the
// error translation is based on.
type ProblemReport struct {
	Type   string            `json:"@type,omitempty"`
	ID     string            `json:"@id,omitempty"`
	Thread *decorator.Thread `json:"~thread,omitempty"`

	Description    Code   `json:"description,omitempty"`
	ExplainLongTxt string `json:"explain-ltxt,omitempty"`
}

// Code represents a problem report code
type Code struct {
	Code string `json:"code,omitempty"`
}

func validateTimestamp(timeStr string) (t time.Time, err error) {
	acceptedFormats := []string{ISO8601, time.RFC3339}
	for _, format := range acceptedFormats {
		if t, err = time.Parse(format, timeStr); err == nil {
			break
		}
	}
	return
}

func (at *AriesTime) UnmarshalJSON(b []byte) (err error) {
	defer err2.Handle(&err)

	t := try.To1(validateTimestamp(strings.Trim(string(b), "\"")))

	*at = AriesTime{Time: t}
	return
}

func (at AriesTime) MarshalJSON() ([]byte, error) {
	t := at.Time
	if y := t.Year(); y < 0 || y >= 10000 {
		// RFC 3339 is clear that years are 4 digits exactly.
		return nil, errors.New("AriesTime.MarshalJSON: year outside of range [0,9999]")
	}

	b := make([]byte, 0, len(ISO8601)+2)
	b = append(b, '"')
	b = t.UTC().AppendFormat(b, ISO8601)
	b = append(b, '"')
	return b, nil
}

func (at AriesTime) String() string {
	return at.Time.String()
}
