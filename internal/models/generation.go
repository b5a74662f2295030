package models

// GeneratedFile represents a generated endpoint helpers file
type GeneratedFile struct {
	PackageName string   // name of the package
	FilePath    string   // path where the file should be written
	Content     string   // generated Go code content
	Helpers     []string // names of the helper functions in this file
}
