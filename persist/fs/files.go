package fs

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
)

func segmentDirName(segmentID string) string {
	return segmentDirPrefix + separator + segmentID
}

// segmentIDFromDirName returns the segment ID encoded in a segment directory
// name, or false if the name is not a segment directory name.
func segmentIDFromDirName(dirName string) (string, bool) {
	prefix := segmentDirPrefix + separator
	if !strings.HasPrefix(dirName, prefix) || len(dirName) == len(prefix) {
		return "", false
	}
	return dirName[len(prefix):], true
}

// segmentIDNanos returns the write timestamp prefix of a segment ID.
func segmentIDNanos(segmentID string) (int64, bool) {
	idx := strings.Index(segmentID, separator)
	if idx <= 0 {
		return 0, false
	}
	nanos, err := strconv.ParseInt(segmentID[:idx], 10, 64)
	if err != nil {
		return 0, false
	}
	return nanos, true
}

// lastSegmentNanos returns the largest timestamp prefix among the segment
// directories under the prefix, or zero if there are none.
func lastSegmentNanos(prefix string) (int64, error) {
	entries, err := os.ReadDir(prefix)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var last int64
	for _, entry := range entries {
		segmentID, ok := segmentIDFromDirName(entry.Name())
		if !ok || !entry.IsDir() {
			continue
		}
		if nanos, ok := segmentIDNanos(segmentID); ok && nanos > last {
			last = nanos
		}
	}
	return last, nil
}

func segmentDirPath(prefix string, segmentID string) string {
	return path.Join(prefix, segmentDirName(segmentID))
}

func segmentFilePath(segmentDirPath, fname string) string {
	fullName := fmt.Sprintf("%s%s", fname, segmentFileSuffix)
	return path.Join(segmentDirPath, fullName)
}

func infoFilePath(segmentDirPath string) string {
	return segmentFilePath(segmentDirPath, infoFileName)
}

func recordsFilePath(segmentDirPath string) string {
	return segmentFilePath(segmentDirPath, recordsFileName)
}

func checkpointFilePath(segmentDirPath string) string {
	return segmentFilePath(segmentDirPath, checkpointFileName)
}

func deletedDocsFilePath(prefix string, name string) string {
	return path.Join(prefix, name)
}

func fileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// openWritable opens a file for writing and truncating as necessary.
func openWritable(filePath string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}
