package ticket

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
)

var allowedAttachmentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Attachment records a file stored on disk for a ticket. FileName is the
// sanitized client name; StoredName is the unique name under the upload
// directory.
type Attachment struct {
	id          uint
	ticketID    uint
	uploaderID  uint
	fileName    string
	storedName  string
	contentType string
	size        int64
	createdAt   time.Time
}

func NewAttachment(ticketID, uploaderID uint, fileName, storedName, contentType string, size int64) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	sanitized := SanitizeFilename(fileName)
	if sanitized == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if !IsAllowedAttachment(sanitized) {
		return nil, fmt.Errorf("file type %s is not allowed", filepath.Ext(sanitized))
	}
	if size <= 0 {
		return nil, fmt.Errorf("file is empty")
	}
	if size > constants.MaxAttachmentBytes {
		return nil, fmt.Errorf("file exceeds maximum size of %d bytes", constants.MaxAttachmentBytes)
	}
	if storedName == "" {
		return nil, fmt.Errorf("stored name is required")
	}

	return &Attachment{
		ticketID:    ticketID,
		uploaderID:  uploaderID,
		fileName:    sanitized,
		storedName:  storedName,
		contentType: contentType,
		size:        size,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(id, ticketID, uploaderID uint, fileName, storedName, contentType string, size int64, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		uploaderID:  uploaderID,
		fileName:    fileName,
		storedName:  storedName,
		contentType: contentType,
		size:        size,
		createdAt:   createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// SanitizeFilename strips path components and replaces characters outside
// [A-Za-z0-9_.-] with underscores. Returns "" when nothing usable remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}

// IsAllowedAttachment reports whether the file extension is on the upload
// allow-list.
func IsAllowedAttachment(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return allowedAttachmentExtensions[ext]
}
