// Where: internal/domain/settings/document.go
// What: In-memory model of the repository credentials settings document.
// Why: Keep the fixed settings/servers/server shape independent of I/O.
package settings

import "github.com/poruru-code/m2settings/internal/meta"

// Document is the single server entry written to settings.xml.
type Document struct {
	ServerID string
	Username string
	Password string
}

// NewDocument returns a Document for the fixed snapshot repository server.
func NewDocument(username, password string) Document {
	return Document{
		ServerID: meta.ServerID,
		Username: username,
		Password: password,
	}
}

// Build renders the document and checks the rendered bytes parse back to the
// same tree. Nothing is returned unless both steps succeed.
func Build(doc Document) ([]byte, error) {
	payload, err := Render(doc)
	if err != nil {
		return nil, err
	}
	parsed, err := Validate(payload)
	if err != nil {
		return nil, err
	}
	if parsed != doc {
		return nil, ErrRoundTrip
	}
	return payload, nil
}
