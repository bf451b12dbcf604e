package config

// Bounds of the compression level range the tool's transport accepts.
const (
	// MinCompressionLevel is the lowest accepted compression level.
	MinCompressionLevel = 1
	// MaxCompressionLevel is the highest accepted compression level.
	MaxCompressionLevel = 9
)

// Intermediate is the validated, in-memory form of a configuration document.
// It mirrors the document's optional structure exactly: a nil section or
// field means the document omitted it or set it to null. No defaults are
// filled in at this stage; resolving absent values is the consumer's
// concern.
type Intermediate struct {
	RemoteMachine *RemoteMachine
	Compression   *Compression
}

// RemoteMachine holds the remoteMachine section.
type RemoteMachine struct {
	// Host names the machine commands run on.
	Host *string
}

// Compression holds the compression section. Present levels are always
// within [MinCompressionLevel, MaxCompressionLevel].
type Compression struct {
	// Local is the compression level for data sent from the local machine.
	Local *int64
	// Remote is the compression level for data sent from the remote machine.
	Remote *int64
}
