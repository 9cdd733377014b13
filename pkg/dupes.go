package dupescan

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sys/unix"
)

// DuplicateGroup represents a group of files with the same hash
type DuplicateGroup struct {
	Hash      string   `json:"hash"`
	Files     []string `json:"files"`
	Count     int      `json:"count"`
	TotalSize int64    `json:"total_size"`
}

// Options configures a Finder. Zero values fall back to the config file (when
// set) and then to package defaults.
type Options struct {
	// Root is the directory to scan. Required.
	Root string

	// IgnorePatterns are filename substrings; a file whose base name
	// contains any of them is never a candidate.
	IgnorePatterns []string

	// IgnoreFile optionally names a file of additional patterns, one per
	// line, # comments allowed.
	IgnoreFile string

	// MinFileSize is the minimum candidate size in bytes (inclusive).
	// Zero means no minimum; callers wanting the conventional default
	// should pass DefaultMinFileSize.
	MinFileSize int64

	// Algorithm names the digest algorithm (sha1, sha256, sha512).
	Algorithm string

	// ChunkSize is the hash read buffer in bytes.
	ChunkSize int

	// HashWorkers bounds the concurrent hashing tasks.
	HashWorkers int

	// SymlinkMode controls directory symlink traversal
	// (SymlinkNone, SymlinkContained, SymlinkAll).
	SymlinkMode string

	// Config supplies defaults for unset options. May be nil.
	Config *Config
}

// Finder runs one duplicate scan over a directory tree. It owns no state
// across runs; FindDuplicates may be called repeatedly.
type Finder struct {
	root          string
	minFileSize   int64
	ignoreManager *IgnoreManager
	algorithm     *HashAlgorithm
	chunkSize     int
	hashWorkers   int
	symlinkMode   string
	logger        *slog.Logger
}

// NewFinder validates the scan root and resolves options against the config
// and package defaults. A root that is missing, not a directory, or not
// readable yields a *SetupError; nothing else fails here.
func NewFinder(opts Options, logger *slog.Logger) (*Finder, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, &SetupError{Path: opts.Root, Reason: "cannot resolve path", Err: err}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, &SetupError{Path: root, Reason: "directory does not exist", Err: err}
	}
	if !info.IsDir() {
		return nil, &SetupError{Path: root, Reason: "not a directory"}
	}
	if err := unix.Access(root, unix.R_OK); err != nil {
		return nil, &SetupError{Path: root, Reason: "directory is not readable", Err: err}
	}

	f := &Finder{
		root:          root,
		minFileSize:   opts.MinFileSize,
		ignoreManager: NewIgnoreManager(opts.IgnorePatterns),
		chunkSize:     opts.ChunkSize,
		hashWorkers:   opts.HashWorkers,
		symlinkMode:   opts.SymlinkMode,
		logger:        logger,
	}

	if opts.IgnoreFile != "" {
		if err := f.ignoreManager.LoadIgnoreFile(opts.IgnoreFile); err != nil {
			return nil, &SetupError{Path: opts.IgnoreFile, Reason: "cannot load ignore file", Err: err}
		}
	}

	// Remaining options: explicit value, then config file, then default
	algoName := opts.Algorithm
	if algoName == "" && opts.Config != nil {
		algoName = opts.Config.GetHashConfig().Default
	}
	if algoName == "" {
		algoName = "sha256"
	}
	algorithm, err := GetHashAlgorithm(algoName)
	if err != nil {
		return nil, &SetupError{Path: root, Reason: "invalid hash algorithm", Err: err}
	}
	f.algorithm = algorithm

	if f.chunkSize <= 0 && opts.Config != nil {
		if size, err := ParseHumanSize(opts.Config.GetPerformanceConfig().HashBuffer); err == nil {
			f.chunkSize = size
		}
	}
	if f.chunkSize <= 0 {
		f.chunkSize = DefaultChunkSize
	}

	if f.hashWorkers <= 0 && opts.Config != nil {
		f.hashWorkers = opts.Config.GetPerformanceConfig().HashWorkers
	}
	if f.hashWorkers <= 0 {
		f.hashWorkers = runtime.NumCPU()
	}

	if f.symlinkMode == "" && opts.Config != nil {
		f.symlinkMode = opts.Config.GetScanConfig().Symlinks
	}
	if f.symlinkMode == "" {
		f.symlinkMode = SymlinkContained
	}

	return f, nil
}

// Root returns the resolved absolute scan root.
func (f *Finder) Root() string {
	return f.root
}

// Algorithm returns the digest algorithm the finder will use.
func (f *Finder) Algorithm() *HashAlgorithm {
	return f.algorithm
}

// Candidates runs only the traversal step and returns every file under the
// root that survives the filename and size filters, in lexicographic path
// order. FindDuplicates calls this internally; it is exported so callers can
// inspect what a scan would hash.
func (f *Finder) Candidates(shutdownChan <-chan struct{}) ([]Candidate, error) {
	candChan := make(chan Candidate, 50)

	var scanErr error
	var scanWg sync.WaitGroup
	scanWg.Add(1)
	go func() {
		defer scanWg.Done()
		scanErr = f.scanTree(candChan, shutdownChan)
	}()

	var candidates []Candidate
	for cand := range candChan {
		candidates = append(candidates, cand)
	}
	scanWg.Wait()
	if scanErr != nil {
		return nil, scanErr
	}

	return candidates, nil
}

// FindDuplicates scans the tree, hashes every candidate concurrently, and
// returns the groups of two or more files sharing a digest. Groups are sorted
// by hash and paths within each group are sorted, so output is deterministic
// for an unchanged tree. shutdownChan may be nil; closing it interrupts the
// scan and FindDuplicates returns ErrInterrupted.
func (f *Finder) FindDuplicates(shutdownChan <-chan struct{}) ([]DuplicateGroup, error) {
	candidates, err := f.Candidates(shutdownChan)
	if err != nil {
		return nil, err
	}

	f.logger.Info("traversal complete", "candidates", len(candidates), "root", f.root)

	// Fan out: one job per candidate, results slot keyed by submission index
	// so a failed hash is dropped for the right path.
	results := make([]hashResult, len(candidates))
	jobChan := make(chan int, len(candidates))

	var hashWg sync.WaitGroup
	for i := 0; i < f.hashWorkers; i++ {
		hashWg.Add(1)
		go func() {
			defer hashWg.Done()
			for idx := range jobChan {
				results[idx] = hashCandidate(candidates[idx].AbsPath, f.algorithm, f.chunkSize, shutdownChan)
			}
		}()
	}
	for idx := range candidates {
		jobChan <- idx
	}
	close(jobChan)
	hashWg.Wait()

	// Fan in: single-threaded fold after the join barrier, submission order
	groups := make(map[string][]int)
	interrupted := false
	for idx, result := range results {
		switch result.Failure {
		case hashOK:
			groups[result.Digest] = append(groups[result.Digest], idx)
		case hashPermissionDenied:
			f.logger.Warn("no access to file", "path", candidates[idx].AbsPath, "error", result.Err)
		case hashIOError:
			f.logger.Error("failed to read file", "path", candidates[idx].AbsPath, "error", result.Err)
		case hashInterrupted:
			interrupted = true
		}
	}
	if interrupted {
		return nil, ErrInterrupted
	}

	var duplicates []DuplicateGroup
	for hash, indices := range groups {
		if len(indices) < 2 {
			continue
		}
		group := DuplicateGroup{Hash: hash, Count: len(indices)}
		for _, idx := range indices {
			group.Files = append(group.Files, candidates[idx].AbsPath)
			group.TotalSize += candidates[idx].Size
		}
		sort.Strings(group.Files)
		duplicates = append(duplicates, group)
	}

	sort.Slice(duplicates, func(i, j int) bool {
		return duplicates[i].Hash < duplicates[j].Hash
	})

	f.logger.Info("scan complete", "groups", len(duplicates))

	return duplicates, nil
}
