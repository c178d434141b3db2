package ports

// FileSystem abstracts the file discovery operations the pipeline needs.
type FileSystem interface {
	// ListFiles returns the files in dir whose name ends with ext,
	// sorted lexicographically by filename.
	ListFiles(dir, ext string) ([]string, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
}
