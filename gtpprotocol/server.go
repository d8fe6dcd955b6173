package gtpprotocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Serve reads commands from r one line at a time, runs them through h and
// writes each response to w followed by an empty line. It returns nil
// after quit or at end of input, and the *ContractError when the engine
// breaks its contract, in which case no response is written for that
// command.
func Serve(r io.Reader, w io.Writer, h *Handler) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read command: %w", readErr)
		}

		if line != "" {
			resp, ok, err := h.HandleInput(line)
			if err != nil {
				return err
			}
			if ok {
				if err := WriteResponse(writer, resp); err != nil {
					return err
				}
				if err := writer.Flush(); err != nil {
					return fmt.Errorf("write response: %w", err)
				}
				if resp.Quit {
					return nil
				}
			}
		}

		if readErr != nil {
			// end of input behaves like quit, without an answer
			return nil
		}
	}
}

// WriteResponse writes one framed response.
func WriteResponse(w io.Writer, resp Response) error {
	if _, err := io.WriteString(w, resp.Format()+ResponseTerminator); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
