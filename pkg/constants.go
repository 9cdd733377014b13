package dupescan

import "strings"

// Hash type constants
const (
	HashTypeSHA1   uint16 = 1 // SHA-1 (20 bytes)
	HashTypeSHA256 uint16 = 2 // SHA-256 (32 bytes)
	HashTypeSHA512 uint16 = 3 // SHA-512 (64 bytes)
)

// Hash output sizes in bytes
const (
	HashSizeSHA1   = 20
	HashSizeSHA256 = 32
	HashSizeSHA512 = 64
)

// Scan defaults
const (
	DefaultChunkSize   = 8192 // Hash read buffer in bytes
	DefaultMinFileSize = 1024 // Minimum candidate size in bytes
)

// Symlink handling modes for directory symlinks encountered during traversal
const (
	SymlinkNone      = "none"      // Never follow directory symlinks
	SymlinkContained = "contained" // Follow only when the target stays under the root
	SymlinkAll       = "all"       // Follow all directory symlinks (cycle guard still applies)
)

// HashTypeName returns the human-readable name for a hash type
func HashTypeName(hashType uint16) string {
	switch hashType {
	case HashTypeSHA1:
		return "sha1"
	case HashTypeSHA256:
		return "sha256"
	case HashTypeSHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

// HashTypeFromName returns the hash type constant from a name (case-insensitive)
func HashTypeFromName(name string) (uint16, bool) {
	switch strings.ToLower(name) {
	case "sha1":
		return HashTypeSHA1, true
	case "sha256":
		return HashTypeSHA256, true
	case "sha512":
		return HashTypeSHA512, true
	default:
		return 0, false
	}
}
