package audit

import "context"

// MultiSink meneruskan entry ke beberapa sink sekaligus, misal zap plus
// tabel audit eksternal. Record tidak boleh gagal, jadi tidak ada agregasi
// error.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Record(ctx context.Context, entry Entry) {
	for _, s := range m.sinks {
		s.Record(ctx, entry)
	}
}
