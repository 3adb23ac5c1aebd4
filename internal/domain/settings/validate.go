// Where: internal/domain/settings/validate.go
// What: Structural validation for rendered settings documents.
// Why: Refuse to hand malformed or reshaped XML to the file writer.
package settings

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMalformedDocument reports XML that does not parse or does not match
	// settings/servers/server/{id,username,password}.
	ErrMalformedDocument = errors.New("malformed settings document")
	// ErrRoundTrip reports a rendered document whose parsed values differ from
	// the values it was rendered from.
	ErrRoundTrip = errors.New("settings document does not round-trip")
)

var serverFields = []string{"id", "username", "password"}

type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Validate parses payload and enforces the fixed document shape: one servers
// element holding one server element whose children are id, username and
// password in that order. It returns the parsed values.
func Validate(payload []byte) (Document, error) {
	var root node
	decoder := xml.NewDecoder(bytes.NewReader(payload))
	decoder.Strict = true
	if err := decoder.Decode(&root); err != nil {
		// The syntax error text never includes element content.
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := expectEnd(decoder); err != nil {
		return Document{}, err
	}

	if root.XMLName.Local != "settings" {
		return Document{}, malformed("root element is %q, want settings", root.XMLName.Local)
	}
	if len(root.Attrs) != 0 {
		return Document{}, malformed("settings must not carry attributes")
	}
	servers, err := onlyChild(root, "servers")
	if err != nil {
		return Document{}, err
	}
	server, err := onlyChild(servers, "server")
	if err != nil {
		return Document{}, err
	}

	if strings.TrimSpace(server.Text) != "" {
		return Document{}, malformed("server must not hold text")
	}
	if len(server.Children) != len(serverFields) {
		return Document{}, malformed("server has %d children, want %d", len(server.Children), len(serverFields))
	}
	values := make([]string, len(serverFields))
	for idx, field := range serverFields {
		child := server.Children[idx]
		if child.XMLName.Local != field {
			return Document{}, malformed("server child %d is %q, want %q", idx, child.XMLName.Local, field)
		}
		if len(child.Children) != 0 || len(child.Attrs) != 0 {
			return Document{}, malformed("%s must hold text only", field)
		}
		values[idx] = child.Text
	}

	return Document{
		ServerID: values[0],
		Username: values[1],
		Password: values[2],
	}, nil
}

func onlyChild(parent node, name string) (node, error) {
	if strings.TrimSpace(parent.Text) != "" {
		return node{}, malformed("%s must not hold text", parent.XMLName.Local)
	}
	if len(parent.Children) != 1 {
		return node{}, malformed("%s has %d children, want exactly one %s", parent.XMLName.Local, len(parent.Children), name)
	}
	child := parent.Children[0]
	if child.XMLName.Local != name {
		return node{}, malformed("%s child is %q, want %q", parent.XMLName.Local, child.XMLName.Local, name)
	}
	if len(child.Attrs) != 0 {
		return node{}, malformed("%s must not carry attributes", name)
	}
	return child, nil
}

// expectEnd allows only whitespace and comments after the root element.
func expectEnd(decoder *xml.Decoder) error {
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		switch t := tok.(type) {
		case xml.Comment:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return malformed("text after settings element")
			}
		default:
			return malformed("content after settings element")
		}
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}
