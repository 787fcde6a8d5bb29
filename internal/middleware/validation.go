package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Drive file and folder IDs are opaque URL-safe tokens; these bounds cover
// every ID shape Google currently issues.
const (
	MinDriveIDLen = 10
	MaxDriveIDLen = 100
)

// driveIDRe matches Drive file/folder IDs: alphanumeric, dash, underscore.
var driveIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a flat JSON error payload,
// matching the API's error contract.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ValidateDocID checks that a document ID is a plausible Drive file ID.
// Returns the cleaned ID, or an error message when invalid.
func ValidateDocID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "doc_id is required"
	}
	if len(id) < MinDriveIDLen || len(id) > MaxDriveIDLen {
		return "", "doc_id has invalid length"
	}
	if !driveIDRe.MatchString(id) {
		return "", "doc_id contains invalid characters"
	}
	return id, ""
}

// ValidateFolderID checks that a folder ID is a plausible Drive folder ID.
// Empty input is allowed: the configured folder is used instead.
func ValidateFolderID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ""
	}
	if len(id) < MinDriveIDLen || len(id) > MaxDriveIDLen {
		return "", "folder_id has invalid length"
	}
	if !driveIDRe.MatchString(id) {
		return "", "folder_id contains invalid characters"
	}
	return id, ""
}
