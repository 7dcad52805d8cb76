package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Metadata describes an imported resume file
type Metadata struct {
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type"`
	Timestamp   string `json:"timestamp"` // RFC3339 format
	Hash        string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Words       int    `json:"words"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, filename, contentType string) *Metadata {
	return &Metadata{
		Filename:    filename,
		ContentType: contentType,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Hash:        computeHash(content),
		Words:       len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
