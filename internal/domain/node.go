package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RootNodeID is the conventional id of the project root folder.
const RootNodeID = "root"

// invalidNameChars matches characters that are not allowed in node names.
var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Kind distinguishes files from folders.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// ParseKind normalizes a kind string. Unrecognized input falls back to file.
func ParseKind(s string) Kind {
	if strings.EqualFold(strings.TrimSpace(s), string(KindFolder)) {
		return KindFolder
	}
	return KindFile
}

// Status is a node's completion state.
type Status string

const (
	StatusNone       Status = "none"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Glyph returns the canonical display glyph for the status. The glyphs are
// also the on-disk representation, for compatibility with older project files.
func (s Status) Glyph() string {
	switch s {
	case StatusCompleted:
		return "✅"
	case StatusInProgress:
		return "⬜"
	case StatusPending:
		return "❌"
	default:
		return ""
	}
}

// DisplayText returns a human-readable label for the status.
func (s Status) DisplayText() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In Progress"
	case StatusPending:
		return "Pending"
	default:
		return "No Status"
	}
}

// ParseStatus normalizes a status value, glyph, or free-text synonym to the
// closest Status. Unrecognized input falls back to StatusNone; loading an old
// project must always succeed with best-effort data.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusCompleted), "✅", "✓", "done", "complete", "completado":
		return StatusCompleted
	case string(StatusInProgress), "⬜", "in progress", "doing", "wip", "en proceso":
		return StatusInProgress
	case string(StatusPending), "❌", "✗", "x", "todo", "pendiente":
		return StatusPending
	default:
		return StatusNone
	}
}

// AllStatuses lists every status in cycle order (none → pending →
// in_progress → completed).
func AllStatuses() []Status {
	return []Status{StatusNone, StatusPending, StatusInProgress, StatusCompleted}
}

// NextStatus returns the status that follows s in cycle order.
func NextStatus(s Status) Status {
	order := AllStatuses()
	for i, st := range order {
		if st == s {
			return order[(i+1)%len(order)]
		}
	}
	return StatusNone
}

// Editor field names recognized by Node.EditField. The set is closed on
// purpose: anything else is an unknown-field error, never a dynamic set.
const (
	FieldName          = "name"
	FieldMarkdownShort = "markdown_short"
	FieldExplanation   = "explanation"
	FieldCode          = "code"
)

// EditorFields holds the four editable content fields of a node.
type EditorFields struct {
	Name          string `json:"name"`
	MarkdownShort string `json:"markdown_short"`
	Explanation   string `json:"explanation"`
	Code          string `json:"code"`
}

// Comment is a dated note attached to a node.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// Metadata carries the extension attributes of a node. Custom is an open bag
// for anything the typed fields don't cover.
type Metadata struct {
	Priority         int            `json:"priority,omitempty"`
	EstimatedMinutes int            `json:"estimated_minutes,omitempty"`
	CompletionPct    int            `json:"completion_percentage,omitempty"`
	Comments         []Comment      `json:"comments,omitempty"`
	Custom           map[string]any `json:"custom,omitempty"`
}

func (m Metadata) clone() Metadata {
	out := m
	out.Comments = append([]Comment(nil), m.Comments...)
	if m.Custom != nil {
		out.Custom = make(map[string]any, len(m.Custom))
		for k, v := range m.Custom {
			out.Custom[k] = v
		}
	}
	return out
}

// Node is one entry in the project tree: a file or folder with editable
// content fields, a status, tags and parent/child links. Links are held as
// ids; the Registry owns the nodes themselves.
type Node struct {
	ID          string
	Name        string
	Kind        Kind
	Status      Status
	ParentID    string
	ChildrenIDs []string
	Fields      EditorFields
	Tags        []string
	CreatedAt   time.Time
	ModifiedAt  time.Time
	Meta        Metadata
}

// NewNode creates a node of the given kind with a fresh id. The name is
// validated; an empty or malformed name is a ValidationError-style failure.
func NewNode(name string, kind Kind, parentID string) (*Node, error) {
	if err := ValidateName(name, kind); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Node{
		ID:         uuid.NewString(),
		Name:       name,
		Kind:       kind,
		Status:     StatusNone,
		ParentID:   parentID,
		Fields:     EditorFields{Name: name},
		CreatedAt:  now,
		ModifiedAt: now,
	}, nil
}

// NewFileNode creates a file node with an initial markdown stub.
func NewFileNode(name, parentID string) (*Node, error) {
	n, err := NewNode(name, KindFile, parentID)
	if err != nil {
		return nil, err
	}
	n.Fields.MarkdownShort = "# " + name
	return n, nil
}

// NewFolderNode creates a folder node.
func NewFolderNode(name, parentID string) (*Node, error) {
	return NewNode(name, KindFolder, parentID)
}

// NewRootNode creates the project root folder with the well-known root id.
func NewRootNode(projectName string) *Node {
	if strings.TrimSpace(projectName) == "" {
		projectName = "Root"
	}
	now := time.Now().UTC()
	return &Node{
		ID:     RootNodeID,
		Name:   projectName,
		Kind:   KindFolder,
		Status: StatusNone,
		Fields: EditorFields{
			Name:          projectName,
			MarkdownShort: "# " + projectName,
		},
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// nodeTemplate pre-fills the editor fields of a template node.
type nodeTemplate struct {
	markdown    string
	explanation string
	code        string
}

func templateFor(templateType, name string) nodeTemplate {
	switch templateType {
	case "config":
		return nodeTemplate{
			markdown:    "# " + name + "\n\nConfiguration file",
			explanation: "Project configuration",
			code:        "{\n  \"version\": \"1.0\",\n  \"name\": \"" + name + "\"\n}",
		}
	case "script":
		return nodeTemplate{
			markdown:    "# " + name + "\n\nAutomation script",
			explanation: "Script for automated tasks",
			code:        "#!/usr/bin/env bash\nset -euo pipefail\n",
		}
	case "documentation":
		return nodeTemplate{
			markdown:    "# " + name + "\n\n## Index\n\n## Sections\n\n",
			explanation: "Technical documentation",
		}
	default: // readme
		return nodeTemplate{
			markdown:    "# " + name + "\n\n## Description\n\n## Installation\n\n## Usage\n\n",
			explanation: "Main project README",
		}
	}
}

// TemplateTypes lists the recognized template names for NewTemplateNode.
func TemplateTypes() []string {
	return []string{"readme", "config", "script", "documentation"}
}

// NewTemplateNode creates a node pre-filled from a named template. Unknown
// template types fall back to the readme template. Names with an extension
// become files, others folders, and the node is tagged with its template.
func NewTemplateNode(templateType, name, parentID string) (*Node, error) {
	kind := KindFolder
	if strings.Contains(name, ".") {
		kind = KindFile
	}
	n, err := NewNode(name, kind, parentID)
	if err != nil {
		return nil, err
	}
	tpl := templateFor(templateType, name)
	n.Fields.MarkdownShort = tpl.markdown
	n.Fields.Explanation = tpl.explanation
	n.Fields.Code = tpl.code
	n.AddTag("template-" + templateType)
	return n, nil
}

// ValidateName checks a node name without touching any node: non-empty after
// trimming, no forbidden characters, and folders should not carry an
// extension-like dot (best-effort, matches the display convention).
func ValidateName(name string, kind Kind) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if invalidNameChars.MatchString(name) {
		return fmt.Errorf("name contains invalid characters: <>:\"/\\|?*")
	}
	if kind == KindFolder && strings.Contains(name, ".") {
		return fmt.Errorf("folder names should not contain an extension")
	}
	return nil
}

// IsFolder reports whether the node is a folder.
func (n *Node) IsFolder() bool { return n.Kind == KindFolder }

// IsFile reports whether the node is a file.
func (n *Node) IsFile() bool { return n.Kind == KindFile }

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool { return len(n.ChildrenIDs) > 0 }

// Touch refreshes the modification timestamp.
func (n *Node) Touch() { n.ModifiedAt = time.Now().UTC() }

// Rename validates and applies a new name, keeping the name editor field in
// sync.
func (n *Node) Rename(newName string) error {
	if err := ValidateName(newName, n.Kind); err != nil {
		return err
	}
	n.Name = newName
	n.Fields.Name = newName
	n.Touch()
	return nil
}

// SetStatus applies a status. Callers holding raw input normalize it with
// ParseStatus first; setting a status never fails.
func (n *Node) SetStatus(s Status) {
	n.Status = s
	n.Touch()
}

// EditField updates one of the four editor fields. Editing the name goes
// through Rename so validation applies; unknown field names are an error.
func (n *Node) EditField(field, content string) error {
	switch field {
	case FieldName:
		return n.Rename(content)
	case FieldMarkdownShort:
		n.Fields.MarkdownShort = content
	case FieldExplanation:
		n.Fields.Explanation = content
	case FieldCode:
		n.Fields.Code = content
	default:
		return fmt.Errorf("unknown editor field: %q", field)
	}
	n.Touch()
	return nil
}

// Field returns the content of one of the four editor fields.
func (n *Node) Field(field string) (string, error) {
	switch field {
	case FieldName:
		return n.Name, nil
	case FieldMarkdownShort:
		return n.Fields.MarkdownShort, nil
	case FieldExplanation:
		return n.Fields.Explanation, nil
	case FieldCode:
		return n.Fields.Code, nil
	default:
		return "", fmt.Errorf("unknown editor field: %q", field)
	}
}

// AddChild appends a child id if not already present. Idempotent.
func (n *Node) AddChild(childID string) {
	for _, id := range n.ChildrenIDs {
		if id == childID {
			return
		}
	}
	n.ChildrenIDs = append(n.ChildrenIDs, childID)
	n.Touch()
}

// RemoveChild removes a child id if present. Idempotent.
func (n *Node) RemoveChild(childID string) {
	for i, id := range n.ChildrenIDs {
		if id == childID {
			n.ChildrenIDs = append(n.ChildrenIDs[:i], n.ChildrenIDs[i+1:]...)
			n.Touch()
			return
		}
	}
}

// AddTag appends a tag if non-empty and not already present.
func (n *Node) AddTag(tag string) {
	if tag == "" {
		return
	}
	for _, t := range n.Tags {
		if t == tag {
			return
		}
	}
	n.Tags = append(n.Tags, tag)
	n.Touch()
}

// RemoveTag removes a tag if present.
func (n *Node) RemoveTag(tag string) {
	for i, t := range n.Tags {
		if t == tag {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			n.Touch()
			return
		}
	}
}

// AddComment attaches a comment and returns its id.
func (n *Node) AddComment(text, author string) string {
	c := Comment{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    author,
		Timestamp: time.Now().UTC(),
	}
	n.Meta.Comments = append(n.Meta.Comments, c)
	n.Touch()
	return c.ID
}

// Validate returns every problem with the node as a message. It never fails;
// an empty list means the node is valid.
func (n *Node) Validate() []string {
	var errs []string
	if strings.TrimSpace(n.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if n.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if invalidNameChars.MatchString(n.Name) {
		errs = append(errs, "name contains invalid characters: <>:\"/\\|?*")
	}
	if n.IsFolder() && strings.Contains(n.Name, ".") {
		errs = append(errs, "folder names should not contain an extension")
	}
	for _, id := range n.ChildrenIDs {
		if id == n.ID {
			errs = append(errs, "node lists itself as a child")
		}
	}
	return errs
}

// Clone produces a deep copy of the node with a fresh id. When newName is
// empty the copy is named "<name> (copia)". ChildrenIDs are copied by value
// only when includeChildren is set; cascading the clone to the referenced
// children is the caller's decision (see DuplicateBranch).
func (n *Node) Clone(newName string, includeChildren bool) *Node {
	if newName == "" {
		newName = n.Name + " (copia)"
	}
	now := time.Now().UTC()
	c := &Node{
		ID:     uuid.NewString(),
		Name:   newName,
		Kind:   n.Kind,
		Status: n.Status,
		Fields: EditorFields{
			Name:          newName,
			MarkdownShort: n.Fields.MarkdownShort,
			Explanation:   n.Fields.Explanation,
			Code:          n.Fields.Code,
		},
		Tags:       append([]string(nil), n.Tags...),
		CreatedAt:  now,
		ModifiedAt: now,
		Meta:       n.Meta.clone(),
	}
	if includeChildren {
		c.ChildrenIDs = append([]string(nil), n.ChildrenIDs...)
	}
	return c
}

// deepCopy returns an exact copy of the node, id and timestamps included.
// Used by history snapshots.
func (n *Node) deepCopy() *Node {
	c := *n
	c.ChildrenIDs = append([]string(nil), n.ChildrenIDs...)
	c.Tags = append([]string(nil), n.Tags...)
	c.Meta = n.Meta.clone()
	return &c
}

// IconGlyph returns the display icon for the node's kind.
func (n *Node) IconGlyph() string {
	if n.IsFolder() {
		return "📁"
	}
	return "📄"
}

// DisplayName formats the node for display: icon, name (folders get a
// trailing slash), status glyph.
func (n *Node) DisplayName(includeIcon, includeStatus bool) string {
	var parts []string
	if includeIcon {
		parts = append(parts, n.IconGlyph())
	}
	name := n.Name
	if n.IsFolder() && !strings.HasSuffix(name, "/") {
		name += "/"
	}
	parts = append(parts, name)
	if includeStatus && n.Status != StatusNone {
		parts = append(parts, n.Status.Glyph())
	}
	return strings.Join(parts, " ")
}
