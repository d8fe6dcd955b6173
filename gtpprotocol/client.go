package gtpprotocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Client is the controller side of GTP: it sends commands to an engine and
// reads back the responses, one at a time. Commands without an id get
// increasing ids so every response can be matched to its command.
//
// Client is synchronous and not safe for concurrent use.
type Client struct {
	reader *bufio.Reader
	writer io.Writer

	nextID         uint32
	responseParser *ResponseParser
}

// NewClient creates a client reading responses from r and writing
// commands to w, typically the stdout and stdin pipes of an engine
// process.
func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{
		reader:         bufio.NewReader(r),
		writer:         w,
		nextID:         1,
		responseParser: NewResponseParser(),
	}
}

// Send sends a command and waits for its response. A response carrying
// another id than the command, or none, is reported as a *ParseError.
func (c *Client) Send(cmd Command) (Response, error) {
	if cmd.ID == nil {
		cmd = cmd.WithID(c.nextID)
		c.nextID++
	}

	resp, err := c.roundTrip(cmd.Format())
	if err != nil {
		return Response{}, err
	}
	if resp.ID == nil {
		return resp, newMissingIDError(*cmd.ID)
	}
	if *resp.ID != *cmd.ID {
		return resp, newIDMismatchError(*cmd.ID, *resp.ID)
	}
	return resp, nil
}

// SendRaw sends a command line verbatim and returns the response. Lines
// holding no command (blank lines, comments) are not sent, since an
// engine would never answer them.
func (c *Client) SendRaw(commandLine string) (Response, error) {
	line := strings.TrimRight(commandLine, "\r\n")
	if _, ok := ParseCommand(line); !ok {
		return Response{}, fmt.Errorf("no command in %q", commandLine)
	}
	return c.roundTrip(line)
}

func (c *Client) roundTrip(line string) (Response, error) {
	if _, err := io.WriteString(c.writer, line+"\n"); err != nil {
		return Response{}, fmt.Errorf("send command: %w", err)
	}
	block, err := c.readBlock()
	if err != nil {
		return Response{}, err
	}
	return c.responseParser.Parse(block)
}

// readBlock reads the lines of one response up to the empty line ending
// it. Empty lines before the response are skipped.
func (c *Client) readBlock() (string, error) {
	var lines []string
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("read response: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(lines) == 0 {
				continue
			}
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}
