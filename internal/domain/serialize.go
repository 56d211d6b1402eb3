package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Document is the on-disk JSON shape of a project. Nodes are keyed by id;
// child order lives in each record's children list.
type Document struct {
	FormatVersion string                `json:"format_version"`
	Project       ProjectMeta           `json:"project"`
	Settings      Settings              `json:"settings"`
	RootID        string                `json:"root_id"`
	Nodes         map[string]NodeRecord `json:"nodes"`

	// LastUpdated is a string rather than a time.Time: legacy writers
	// emitted local timestamps without a zone, which do not parse as
	// RFC 3339.
	LastUpdated string `json:"last_updated"`

	// Pre-4.0 documents stored the version under a different key.
	LegacyVersion string `json:"version,omitempty"`
}

// NodeRecord is the serialized form of a single node. Status is stored as
// its display glyph. Timestamps are RFC 3339.
type NodeRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Status        string    `json:"status,omitempty"`
	ParentID      string    `json:"parent_id,omitempty"`
	Children      []string  `json:"children"`
	MarkdownShort string    `json:"markdown_short,omitempty"`
	Explanation   string    `json:"explanation,omitempty"`
	Code          string    `json:"code,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     string    `json:"created_at,omitempty"`
	ModifiedAt    string    `json:"modified_at,omitempty"`
	Metadata      *Metadata `json:"metadata,omitempty"`

	// Pre-4.0 records carried a single free-form content blob.
	LegacyContent string `json:"content,omitempty"`
}

// EncodeProject serializes a project to indented JSON in the current format
// version.
func EncodeProject(p *Project) ([]byte, error) {
	doc := Document{
		FormatVersion: FormatVersion,
		Project:       p.Meta,
		Settings:      p.Settings,
		RootID:        RootNodeID,
		Nodes:         make(map[string]NodeRecord, p.Registry.Len()),
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
	}
	for _, n := range p.Registry.All() {
		doc.Nodes[n.ID] = encodeNode(n)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func encodeNode(n *Node) NodeRecord {
	rec := NodeRecord{
		ID:            n.ID,
		Name:          n.Name,
		Type:          string(n.Kind),
		Status:        n.Status.Glyph(),
		ParentID:      n.ParentID,
		Children:      append([]string{}, n.ChildrenIDs...),
		MarkdownShort: n.Fields.MarkdownShort,
		Explanation:   n.Fields.Explanation,
		Code:          n.Fields.Code,
		Tags:          append([]string(nil), n.Tags...),
		CreatedAt:     n.CreatedAt.UTC().Format(time.RFC3339),
		ModifiedAt:    n.ModifiedAt.UTC().Format(time.RFC3339),
	}
	if n.Meta.Priority != 0 || n.Meta.EstimatedMinutes != 0 || n.Meta.CompletionPct != 0 ||
		len(n.Meta.Comments) > 0 || len(n.Meta.Custom) > 0 {
		meta := n.Meta.clone()
		rec.Metadata = &meta
	}
	return rec
}

// DecodeProject parses a project document, migrating pre-4.0 records, and
// verifies the structural integrity of the resulting tree. Integrity
// violations do not fail the decode: the assembled project is returned
// together with the full sorted violation list, and the caller chooses
// between refusing the load and a best-effort repair. The error return is
// reserved for input that cannot produce a project at all.
func DecodeProject(data []byte) (*Project, []string, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing project document: %w", err)
	}

	version := doc.FormatVersion
	if version == "" {
		version = doc.LegacyVersion
	}
	legacy := isLegacyVersion(version)
	r := NewRegistry()
	for id, rec := range doc.Nodes {
		n, err := decodeNode(id, rec, legacy)
		if err != nil {
			return nil, nil, err
		}
		r.Save(n)
	}

	if err := adoptRoot(r, doc.RootID); err != nil {
		return nil, nil, err
	}

	issues := r.ValidateIntegrity()
	sort.Strings(issues)

	meta := doc.Project
	if meta.Name == "" {
		if root := r.Find(RootNodeID); root != nil {
			meta.Name = root.Name
		}
	}
	return AssembleProject(meta, doc.Settings, r), issues, nil
}

func isLegacyVersion(v string) bool {
	if v == "" {
		return true
	}
	return majorVersion(v) < majorVersion(FormatVersion)
}

func majorVersion(v string) int {
	head, _, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return n
}

func decodeNode(id string, rec NodeRecord, legacy bool) (*Node, error) {
	if rec.ID == "" {
		rec.ID = id
	}
	if rec.ID != id {
		return nil, fmt.Errorf("node record %s carries mismatched id %s", id, rec.ID)
	}
	kind := ParseKind(rec.Type)

	short := rec.MarkdownShort
	if legacy && short == "" && rec.LegacyContent != "" {
		// Only the first line survives the migration; explanation and
		// code start empty.
		short = firstLine(rec.LegacyContent)
	}

	n := &Node{
		ID:          rec.ID,
		Name:        rec.Name,
		Kind:        kind,
		Status:      ParseStatus(rec.Status),
		ParentID:    rec.ParentID,
		ChildrenIDs: append([]string{}, rec.Children...),
		Fields: EditorFields{
			Name:          rec.Name,
			MarkdownShort: short,
			Explanation:   rec.Explanation,
			Code:          rec.Code,
		},
		Tags:       append([]string(nil), rec.Tags...),
		CreatedAt:  parseTimestamp(rec.CreatedAt),
		ModifiedAt: parseTimestamp(rec.ModifiedAt),
	}
	if rec.Metadata != nil {
		n.Meta = rec.Metadata.clone()
	}
	return n, nil
}

// adoptRoot normalizes the document's root onto the conventional root id.
// Legacy documents used a generated uuid for the root; references to it are
// rewritten.
func adoptRoot(r *Registry, rootID string) error {
	if rootID == "" || rootID == RootNodeID {
		if rootID == RootNodeID && !r.Has(RootNodeID) {
			return fmt.Errorf("document names root %s but no such node exists", rootID)
		}
		return nil
	}
	old := r.Find(rootID)
	if old == nil {
		return fmt.Errorf("document names root %s but no such node exists", rootID)
	}
	if r.Has(RootNodeID) {
		return fmt.Errorf("document names root %s but a node with the reserved root id also exists", rootID)
	}
	r.rekey(rootID, RootNodeID)
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
