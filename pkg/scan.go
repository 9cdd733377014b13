package dupescan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
)

// Candidate represents a file that passed the filename and size filters and
// is eligible for hashing. Size is captured at traversal time so the report
// layer never has to stat the file again.
type Candidate struct {
	AbsPath string
	RelPath string
	Size    int64
}

// visitedDir identifies a directory by device and inode, used to break
// symlink cycles during traversal.
type visitedDir struct {
	dev uint64
	ino uint64
}

// scanTree walks the tree under f.root and streams surviving candidates to
// resultChan in lexicographic path order, closing the channel when done.
// Unreadable directories and unstattable files are skipped with a diagnostic;
// only shutdown stops the walk early.
func (f *Finder) scanTree(resultChan chan<- Candidate, shutdownChan <-chan struct{}) error {
	defer close(resultChan)

	visited := make(map[visitedDir]bool)
	pathQueue := []string{f.root}

	for len(pathQueue) > 0 {
		select {
		case <-shutdownChan:
			return ErrInterrupted
		default:
		}

		// Always process the first path (lexicographically smallest)
		currentPath := pathQueue[0]
		pathQueue = pathQueue[1:]

		info, err := os.Lstat(currentPath)
		if err != nil {
			// Vanished between listing and stat
			f.logger.Warn("skipping unstattable path", "path", currentPath, "error", err)
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			targetInfo, err := os.Stat(currentPath)
			if err != nil {
				continue // Broken symlink
			}
			if targetInfo.IsDir() {
				switch f.symlinkMode {
				case SymlinkNone:
					continue
				case SymlinkContained:
					target, err := filepath.EvalSymlinks(currentPath)
					if err != nil {
						continue
					}
					if !isPathContained(target, f.root) {
						continue // Points outside the scan root
					}
					info = targetInfo
				default: // SymlinkAll
					info = targetInfo
				}
			} else {
				// File symlinks hash the target content
				info = targetInfo
			}
		}

		if info.IsDir() {
			if key, ok := dirIdentity(currentPath); ok {
				if visited[key] {
					f.logger.Warn("skipping already-visited directory (symlink cycle?)", "path", currentPath)
					continue
				}
				visited[key] = true
			}

			entries, err := os.ReadDir(currentPath)
			if err != nil {
				f.logger.Warn("skipping unreadable directory", "path", currentPath, "error", err)
				continue
			}

			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})

			var newPaths []string
			for _, entry := range entries {
				newPaths = append(newPaths, filepath.Join(currentPath, entry.Name()))
			}
			pathQueue = insertSorted(pathQueue, newPaths)

		} else if info.Mode().IsRegular() {
			if f.ignoreManager.ShouldIgnore(filepath.Base(currentPath)) {
				continue
			}
			if info.Size() < f.minFileSize {
				continue
			}

			relPath, err := filepath.Rel(f.root, currentPath)
			if err != nil {
				relPath = currentPath
			}

			resultChan <- Candidate{
				AbsPath: currentPath,
				RelPath: relPath,
				Size:    info.Size(),
			}
		}
		// Sockets, pipes, devices are not candidates
	}

	return nil
}

// dirIdentity returns the device/inode pair for a directory. ok is false when
// the stat fails or the platform does not expose Stat_t.
func dirIdentity(path string) (visitedDir, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return visitedDir{}, false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return visitedDir{}, false
	}
	return visitedDir{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}

// isPathContained checks if targetPath is contained within containerPath.
// Both paths must already be absolute and clean.
func isPathContained(targetPath, containerPath string) bool {
	targetPath = filepath.Clean(targetPath)
	containerPath = filepath.Clean(containerPath)

	if targetPath == containerPath {
		return true
	}
	return strings.HasPrefix(targetPath, containerPath+string(filepath.Separator))
}

// insertSorted inserts new paths into an existing sorted slice maintaining order
func insertSorted(existing []string, newPaths []string) []string {
	if len(newPaths) == 0 {
		return existing
	}
	sort.Strings(newPaths)
	if len(existing) == 0 {
		return newPaths
	}

	// Merge the two sorted slices
	result := make([]string, 0, len(existing)+len(newPaths))
	i, j := 0, 0
	for i < len(existing) && j < len(newPaths) {
		if existing[i] <= newPaths[j] {
			result = append(result, existing[i])
			i++
		} else {
			result = append(result, newPaths[j])
			j++
		}
	}
	result = append(result, existing[i:]...)
	result = append(result, newPaths[j:]...)

	return result
}
