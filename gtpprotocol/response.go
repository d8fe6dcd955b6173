package gtpprotocol

import (
	"strconv"
	"strings"
)

// Response is the outcome of one command.
type Response struct {
	Success bool
	ID      *uint32 // echoed from the command
	Text    string  // response data, or the error message on failure

	// Quit is set by the quit command. The serve loop stops after writing
	// the response.
	Quit bool
}

// NewSuccessResponse creates a successful response with the given text.
func NewSuccessResponse(text string) Response {
	return Response{Success: true, Text: text}
}

// NewFailureResponse creates a failed response with the given message.
func NewFailureResponse(message string) Response {
	return Response{Success: false, Text: message}
}

// Format returns the response as written on the wire, without the
// terminating empty line.
func (r Response) Format() string {
	var b strings.Builder
	if r.Success {
		b.WriteString(SuccessPrefix)
	} else {
		b.WriteString(FailurePrefix)
	}
	if r.ID != nil {
		b.WriteString(strconv.FormatUint(uint64(*r.ID), 10))
	}
	b.WriteByte(' ')
	b.WriteString(r.Text)
	return b.String()
}

// Lines returns the response text split into lines.
func (r Response) Lines() []string {
	if r.Text == "" {
		return nil
	}
	return strings.Split(r.Text, "\n")
}

// ResponseParser parses responses read from an engine.
type ResponseParser struct{}

// NewResponseParser creates a new response parser.
func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse parses one response block: the lines of a response without the
// terminating empty line.
func (p *ResponseParser) Parse(block string) (Response, error) {
	block = strings.TrimRight(strings.ReplaceAll(block, "\r", ""), "\n")
	if block == "" {
		return Response{}, newUnexpectedResponseError(block)
	}

	var resp Response
	switch block[0] {
	case SuccessPrefix[0]:
		resp.Success = true
	case FailurePrefix[0]:
		resp.Success = false
	default:
		return Response{}, newUnexpectedResponseError(block)
	}

	first, rest, multiLine := strings.Cut(block[1:], "\n")
	head, text, _ := strings.Cut(first, " ")
	if head != "" {
		n, err := strconv.ParseUint(head, 10, 32)
		if err != nil {
			return Response{}, newInvalidIDError(head)
		}
		id := uint32(n)
		resp.ID = &id
	}
	if multiLine {
		text += "\n" + rest
	}
	resp.Text = text
	return resp, nil
}
