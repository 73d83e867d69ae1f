package workspace

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/Fanaperana/ekan/pkg/models"
)

// Encode serializes the document to indented JSON.
func Encode(doc *Export) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding export document: %w", err)
	}
	return data, nil
}

// Decode parses a document from JSON bytes. The result is validated so a
// malformed file is rejected before any import is attempted.
func Decode(data []byte) (*Export, error) {
	var doc Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &models.ValidationError{Entity: "export document", Err: err}
	}
	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteFile encodes the document and writes it to path. Path selection is
// the caller's concern; this only performs the raw byte write.
func WriteFile(fs afero.Fs, path string, doc *Export) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("error writing export file %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and decodes an export document from path.
func ReadFile(fs afero.Fs, path string) (*Export, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading export file %s: %w", path, err)
	}
	return Decode(data)
}

// ExportFilename returns a default file name for a workspace export,
// combining a slug of the workspace name with a fresh UUID so repeated
// exports never collide.
func ExportFilename(workspaceName string) string {
	slug := strings.ToLower(strings.TrimSpace(workspaceName))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "workspace"
	}
	return fmt.Sprintf("%s-%s.json", slug, uuid.New().String()[:8])
}
