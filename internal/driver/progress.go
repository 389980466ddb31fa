package driver

import "time"

// Stage describes where a file is in the formatting pipeline.
type Stage string

const (
	StageRead   Stage = "read"
	StageParse  Stage = "parse"
	StageFormat Stage = "format"
	StageWrite  Stage = "write"
)

// Status captures progress state of one file.
type Status string

const (
	StatusQueued      Status = "queued"
	StatusWorking     Status = "working"
	StatusReformatted Status = "reformatted"
	StatusUnchanged   Status = "unchanged"
	StatusError       Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Final reports whether the event closes the file's lifecycle.
func (e Event) Final() bool {
	switch e.Status {
	case StatusReformatted, StatusUnchanged, StatusError:
		return true
	default:
		return false
	}
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; events arrive from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
