package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"tableflip.dev/planner/pkg/model"
)

// ExportFileName is the default name of an exported document.
const ExportFileName = "study-planner-export.json"

// Document bundles the complete planner state for export and import.
type Document struct {
	Subjects []model.Subject `json:"subjects"`
	Tasks    []model.Task    `json:"tasks"`
	Sessions []model.Session `json:"sessions"`
	Settings model.Settings  `json:"settings"`
}

// Snapshot copies the current state into a Document.
func (p *Planner) Snapshot() Document {
	return Document{
		Subjects: cloneOrEmpty(p.subjects),
		Tasks:    cloneOrEmpty(p.tasks),
		Sessions: cloneOrEmpty(p.sessions),
		Settings: p.settings,
	}
}

// Export writes the current state as indented JSON.
func (p *Planner) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.Snapshot()); err != nil {
		return fmt.Errorf("planner: export: %w", err)
	}
	return nil
}

// Import replaces every collection with the document read from r and saves
// them. The document is decoded and checked before anything changes, so a
// rejected import leaves the planner untouched.
func (p *Planner) Import(ctx context.Context, r io.Reader) error {
	doc, err := DecodeDocument(r, p.settings)
	if err != nil {
		return err
	}
	p.subjects = doc.Subjects
	p.tasks = doc.Tasks
	p.sessions = doc.Sessions
	p.settings = doc.Settings
	p.log.Info("planner import applied", "subjects", len(doc.Subjects), "tasks", len(doc.Tasks), "sessions", len(doc.Sessions))
	p.saveAll()
	return nil
}

// importDocument distinguishes absent fields from empty ones.
type importDocument struct {
	Subjects *[]model.Subject `json:"subjects"`
	Tasks    *[]model.Task    `json:"tasks"`
	Sessions *[]model.Session `json:"sessions"`
	Settings *model.Settings  `json:"settings"`
}

// DecodeDocument parses an exported document. subjects, tasks and sessions
// must be present; a missing settings value is replaced by current.
func DecodeDocument(r io.Reader, current model.Settings) (Document, error) {
	var in importDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Document{}, fmt.Errorf("%w: unexpected data after the document", ErrInvalidImport)
	}
	var missing []string
	if in.Subjects == nil {
		missing = append(missing, "subjects")
	}
	if in.Tasks == nil {
		missing = append(missing, "tasks")
	}
	if in.Sessions == nil {
		missing = append(missing, "sessions")
	}
	if len(missing) > 0 {
		return Document{}, fmt.Errorf("%w: missing %s", ErrInvalidImport, strings.Join(missing, ", "))
	}
	doc := Document{
		Subjects: cloneOrEmpty(*in.Subjects),
		Tasks:    cloneOrEmpty(*in.Tasks),
		Sessions: cloneOrEmpty(*in.Sessions),
		Settings: current,
	}
	if in.Settings != nil {
		doc.Settings = *in.Settings
	}
	return doc, nil
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
