package models

// DirectoryInfo represents the size of one directory subtree
type DirectoryInfo struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}
