package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RootParentID is the parentId of top-level entries.
const RootParentID = "0"

// FileType is the kind of a stored entry.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// Valid reports whether t is one of the known kinds.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// HasContent reports whether entries of this kind carry bytes in the content store.
func (t FileType) HasContent() bool {
	return t == FileTypeFile || t == FileTypeImage
}

// ThumbnailWidths are the derived image widths produced by the worker.
var ThumbnailWidths = []int{500, 250, 100}

// File is a folder, file or image owned by a user.
// LocalPath is empty for folders.
type File struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Type      FileType `json:"type"`
	IsPublic  bool     `json:"isPublic"`
	ParentID  ParentID `json:"parentId"`
	LocalPath string   `json:"localPath,omitempty"`
}

// ThumbnailPath returns the content path of the derived artifact of the given width.
func (f *File) ThumbnailPath(width int) string {
	return f.LocalPath + "_" + strconv.Itoa(width)
}

// ParentID references the containing folder, or RootParentID.
// It decodes from either a JSON string or a JSON number.
type ParentID string

// IsRoot reports whether p denotes the top level.
func (p ParentID) IsRoot() bool {
	return p == "" || p == RootParentID
}

// UnmarshalJSON accepts "abc", 0 and null.
func (p *ParentID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*p = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = ParentID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("parentId must be a string or a number: %w", err)
	}
	*p = ParentID(n.String())
	return nil
}
