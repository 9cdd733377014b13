package dupescan

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
)

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	TypeID  uint16
	Size    int
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	typeID, ok := HashTypeFromName(name)
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm: %s", name)
	}
	return GetHashAlgorithmByType(typeID)
}

// GetHashAlgorithmByType returns the hash algorithm configuration for the given type ID
func GetHashAlgorithmByType(typeID uint16) (*HashAlgorithm, error) {
	switch typeID {
	case HashTypeSHA1:
		return &HashAlgorithm{
			Name:    "sha1",
			TypeID:  HashTypeSHA1,
			Size:    HashSizeSHA1,
			NewFunc: func() hash.Hash { return sha1.New() },
		}, nil
	case HashTypeSHA256:
		return &HashAlgorithm{
			Name:    "sha256",
			TypeID:  HashTypeSHA256,
			Size:    HashSizeSHA256,
			NewFunc: func() hash.Hash { return sha256.New() },
		}, nil
	case HashTypeSHA512:
		return &HashAlgorithm{
			Name:    "sha512",
			TypeID:  HashTypeSHA512,
			Size:    HashSizeSHA512,
			NewFunc: func() hash.Hash { return sha512.New() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported hash type ID: %d", typeID)
	}
}

// hashFailureKind classifies why a file produced no digest, so the caller can
// pick the right diagnostic severity without inspecting the error itself.
type hashFailureKind int

const (
	hashOK hashFailureKind = iota
	hashPermissionDenied
	hashIOError
	hashInterrupted
)

// hashResult is the outcome of hashing one file: either a hex digest, or a
// classified failure. A failed result never aborts the surrounding scan.
type hashResult struct {
	Digest  string
	Failure hashFailureKind
	Err     error
}

func (r hashResult) ok() bool {
	return r.Failure == hashOK
}

// HashFileInterruptible calculates the hash of a file reading it in
// chunkSize-byte buffers, checking for shutdown between reads so a large file
// cannot stall a shutdown indefinitely. shutdownChan may be nil.
func HashFileInterruptible(filePath string, algorithm *HashAlgorithm, chunkSize int, shutdownChan <-chan struct{}) ([]byte, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	hasher := algorithm.NewFunc()
	buffer := make([]byte, chunkSize)

	for {
		select {
		case <-shutdownChan:
			return nil, ErrInterrupted
		default:
		}

		n, err := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read from file %s: %w", filePath, err)
		}
	}

	return hasher.Sum(nil), nil
}

// HashFileToHexString calculates the hash of a file and returns it as a hex string
func HashFileToHexString(filePath string, algorithm *HashAlgorithm, chunkSize int, shutdownChan <-chan struct{}) (string, error) {
	hashBytes, err := HashFileInterruptible(filePath, algorithm, chunkSize, shutdownChan)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hashBytes), nil
}

// hashCandidate hashes one file and folds the error into a hashResult. Open
// and read failures are classified so the worker can log permission problems
// at warn and other I/O problems at error.
func hashCandidate(filePath string, algorithm *HashAlgorithm, chunkSize int, shutdownChan <-chan struct{}) hashResult {
	digest, err := HashFileToHexString(filePath, algorithm, chunkSize, shutdownChan)
	if err == nil {
		return hashResult{Digest: digest}
	}
	switch {
	case errors.Is(err, ErrInterrupted):
		return hashResult{Failure: hashInterrupted, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return hashResult{Failure: hashPermissionDenied, Err: err}
	default:
		return hashResult{Failure: hashIOError, Err: err}
	}
}
