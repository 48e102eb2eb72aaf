package fsync

// Options controls sync behavior.
type Options struct {
	Recursive bool // descend into subdirectories
	Overwrite bool // replace files that already exist in the destination
	DryRun    bool // log planned copies without writing anything
}

// DeployDefaults returns the options a deployment sync uses: recursive,
// overwrite-all, never prompting.
func DeployDefaults() Options {
	return Options{Recursive: true, Overwrite: true}
}

// Syncer mirrors a source directory tree into a destination, skipping
// paths that match the exclusion patterns.
type Syncer interface {
	Sync(src, dst string, exclusions []string, opts Options) error
}
