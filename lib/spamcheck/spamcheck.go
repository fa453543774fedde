// Package spamcheck defines request and response of a spam check, shared by the filter and the web API.
package spamcheck

import (
	"fmt"
	"time"
)

// Request is a request to check a message for spam.
type Request struct {
	Msg string `json:"msg" validate:"required,max=65536"` // message to check
}

func (r *Request) String() string {
	return fmt.Sprintf("msg:%q", r.Msg)
}

// Response is a result of spam check.
type Response struct {
	Name        string  `json:"name"`        // name of the check
	Spam        bool    `json:"spam"`        // true if spam
	Probability float64 `json:"probability"` // spam probability, 0.0 - 1.0
	Details     string  `json:"details"`     // details of the check
	Error       error   `json:"-"`           // error message, if any. Do not serialize it
}

func (r *Response) String() string {
	spamOrHam := "ham"
	if r.Spam {
		spamOrHam = "spam"
	}
	return fmt.Sprintf("%s: %s, %.2f%%, %s", r.Name, spamOrHam, r.Probability*100, r.Details)
}

// Check is a request with its response, as kept in History
type Check struct {
	Request  Request   `json:"request"`
	Response Response  `json:"response"`
	Time     time.Time `json:"time"`
}
