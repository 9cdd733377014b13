// Package dupescan provides directory scanning, concurrent file hashing, and
// duplicate detection by exact content equality.
//
// # Core API
//
// The main entry point is Finder, which runs one scan over a directory tree:
//
//	finder, err := dupescan.NewFinder(dupescan.Options{Root: "/path/to/dir"}, logger)
//	if err != nil {
//		// setup failure: root missing, not a directory, or unreadable
//	}
//	groups, err := finder.FindDuplicates(nil)
//	for _, group := range groups {
//		fmt.Printf("Hash %s: %v\n", group.Hash, group.Files)
//	}
//
// Each returned DuplicateGroup holds two or more absolute paths whose content
// hashes to the same digest. Groups are sorted by digest and paths within a
// group are sorted, so repeated scans over an unchanged tree produce
// identical output.
//
// # Filtering
//
// Candidates are selected during traversal by two independent predicates: a
// minimum file size in bytes, and filename substring ignore patterns (matched
// against the base name only, case-sensitive). See Options and IgnoreManager.
//
// # Error handling
//
// Per-file and per-directory failures never abort a scan; they are logged on
// the Finder's logger and the affected item is excluded from the results.
// Only setup failures (reported as *SetupError) and interruption stop a run.
package dupescan
