package directory

import (
	"context"
	"sync"
)

type memoryDirectory struct {
	lock    sync.Mutex
	records map[string]Record
}

// NewMemoryDirectory returns an in-process Directory for tests and local
// runs.
func NewMemoryDirectory() Directory {
	return &memoryDirectory{records: make(map[string]Record)}
}

func memoryKey(fromNumber, callID string) string {
	return fromNumber + "#" + callID
}

func (m *memoryDirectory) FindByCaller(ctx context.Context, fromNumber, callID string) (*Record, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	rec, ok := m.records[memoryKey(fromNumber, callID)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryDirectory) FindAllByMeeting(ctx context.Context, meetingID string) ([]Record, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	var roster []Record
	for _, rec := range m.records {
		if rec.MeetingID == meetingID {
			roster = append(roster, rec)
		}
	}
	return roster, nil
}

func (m *memoryDirectory) Upsert(ctx context.Context, rec Record) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.records[memoryKey(rec.FromNumber, rec.CallID)] = rec
	return nil
}

func (m *memoryDirectory) Delete(ctx context.Context, fromNumber, callID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.records, memoryKey(fromNumber, callID))
	return nil
}
