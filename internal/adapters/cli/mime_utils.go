package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/mikey/llm-phishing-detector/internal/core"
)

const noTextContent = "[No text content found in multipart message]"

// errNotAMessage is returned for input that has no RFC 5322 header block
var errNotAMessage = errors.New("input is not an RFC 5322 message")

// ParseEmail parses an RFC 5322/MIME message. Parts in unknown charsets are
// kept undecoded.
func ParseEmail(raw []byte) (*core.Email, error) {
	entity, err := message.Read(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	if !hasMessageHeaders(entity.Header) {
		return nil, errNotAMessage
	}

	header := mail.Header{Header: entity.Header}
	email := &core.Email{}

	if subject, err := header.Subject(); err == nil {
		email.Subject = subject
	} else {
		email.Subject = header.Get("Subject")
	}

	if from, err := header.AddressList("From"); err == nil && len(from) > 0 {
		email.From = from[0].Address
		if from[0].Name != "" {
			email.From = fmt.Sprintf("%s <%s>", from[0].Name, from[0].Address)
		}
	} else {
		email.From = header.Get("From")
	}

	if to, err := header.AddressList("To"); err == nil {
		for _, addr := range to {
			email.To = append(email.To, addr.Address)
		}
	} else if raw := header.Get("To"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			email.To = append(email.To, strings.TrimSpace(addr))
		}
	}

	body, err := extractText(entity)
	if err != nil {
		return nil, err
	}
	email.Body = body

	return email, nil
}

// hasMessageHeaders reports whether at least one header identifying an email is present
func hasMessageHeaders(h message.Header) bool {
	for _, key := range []string{"From", "To", "Subject", "Date", "Message-Id", "Content-Type", "Mime-Version"} {
		if h.Has(key) {
			return true
		}
	}
	return false
}

// extractText returns the text/plain content of the entity. Nested multiparts
// are walked; text/html is used only when no plain text exists.
func extractText(entity *message.Entity) (string, error) {
	var plain, html bytes.Buffer
	if err := collectText(entity, &plain, &html); err != nil {
		return "", err
	}

	switch {
	case plain.Len() > 0:
		return plain.String(), nil
	case html.Len() > 0:
		return html.String(), nil
	case entity.MultipartReader() != nil:
		return noTextContent, nil
	default:
		return "", nil
	}
}

func collectText(entity *message.Entity, plain, html *bytes.Buffer) error {
	if mr := entity.MultipartReader(); mr != nil {
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				return nil
			}
			if err != nil && !message.IsUnknownCharset(err) {
				// keep whatever was read before the broken part
				if plain.Len() > 0 || html.Len() > 0 {
					return nil
				}
				return fmt.Errorf("failed to read part: %w", err)
			}
			if err := collectText(p, plain, html); err != nil {
				return err
			}
		}
	}

	mediaType := "text/plain"
	if contentType := entity.Header.Get("Content-Type"); contentType != "" {
		if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = parsed
		}
	}

	var target *bytes.Buffer
	switch mediaType {
	case "text/plain":
		target = plain
	case "text/html":
		target = html
	default:
		return nil
	}

	content, err := io.ReadAll(entity.Body)
	if err != nil {
		return fmt.Errorf("failed to read part body: %w", err)
	}
	if target.Len() > 0 {
		target.WriteString("\n")
	}
	target.Write(content)
	return nil
}
