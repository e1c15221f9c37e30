package service

// Recorder receives counters from the services; the metrics package
// implements it on top of prometheus.
type Recorder interface {
	MessagePublished(topic string)
	PollServed(delivered bool)
	LogIngested(category string)
	Evicted(store string, n int)
}

type nopRecorder struct{}

func (nopRecorder) MessagePublished(string) {}

func (nopRecorder) PollServed(bool) {}

func (nopRecorder) LogIngested(string) {}

func (nopRecorder) Evicted(string, int) {}
