package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func sampleEntries() []models.ScheduleEntry {
	return []models.ScheduleEntry{
		{ID: "g1", Date: day(5), StartTime: "08:00", Subject: "Physics", Topic: "Kinematics", Faculty: "Dr. Rao", ClassName: "XI-A", Batch: "2024", Room: "L1", Mode: "offline", Status: "scheduled"},
		{ID: "g2", Date: day(4), StartTime: "09:00", Subject: "Chemistry", Topic: "Bonds", Faculty: "Dr. Santoso", ClassName: "XI-B", Batch: "2024", Room: "L2", Mode: "online", Status: "scheduled"},
		{ID: "g3", Date: day(6), StartTime: "10:00", Subject: "Physics", Topic: "Optics", Faculty: "Dr. Rao", ClassName: "XI-B", Batch: "2025", Room: "L1", Mode: "offline", Status: "completed"},
		{ID: "g4", Date: day(4), StartTime: "11:00", Subject: "Biology", Topic: "Cells", Faculty: "Dr. Wijaya", ClassName: "XI-A", Batch: "2025", Room: "L3", Mode: "offline", Status: "cancelled"},
		{ID: "g5", Date: day(7), StartTime: "08:00", Subject: "Mathematics", Topic: "Physics of motion", Faculty: "Dr. Rao", ClassName: "XI-C", Batch: "2024", Room: "L2", Mode: "online", Status: "scheduled"},
	}
}

func sampleTeacherEntries() []models.TeacherScheduleEntry {
	return []models.TeacherScheduleEntry{
		{ID: "t1", TeacherID: "teacher-rao", Date: day(5), StartTime: "08:00", Subject: "Physics", ClassName: "XI-A", Batch: "2024", Room: "L1", Mode: "offline", Status: "scheduled"},
		{ID: "t2", TeacherID: "teacher-rao", Date: day(6), StartTime: "10:00", Subject: "Physics", ClassName: "XI-B", Batch: "2025", Room: "L1", Mode: "offline", Status: "completed"},
		{ID: "t3", TeacherID: "teacher-santoso", Date: day(4), StartTime: "09:00", Subject: "Chemistry", ClassName: "XI-B", Batch: "2024", Room: "L2", Mode: "online", Status: "scheduled"},
	}
}

// mockScheduleSource serves fixed arrays and counts loads.
type mockScheduleSource struct {
	mu           sync.Mutex
	entries      []models.ScheduleEntry
	teacher      []models.TeacherScheduleEntry
	err          error
	calls        int
	teacherCalls []string
	gate         chan struct{}
}

func (m *mockScheduleSource) ListEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	m.calls++
	gate := m.gate
	m.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.ScheduleEntry(nil), m.entries...), nil
}

func (m *mockScheduleSource) ListTeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.teacherCalls = append(m.teacherCalls, teacherID)
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.TeacherScheduleEntry, 0, len(m.teacher))
	for _, e := range m.teacher {
		if teacherID == "" || e.TeacherID == teacherID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockScheduleSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Entries and TeacherEntries let the mock stand in for the loader directly.
func (m *mockScheduleSource) Entries(ctx context.Context) ([]models.ScheduleEntry, error) {
	return m.ListEntries(ctx)
}

func (m *mockScheduleSource) TeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error) {
	return m.ListTeacherEntries(ctx, teacherID)
}

// memoryCache is a CacheRepository that round-trips values through JSON.
type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, pattern)
	for key := range c.data {
		if key == pattern || (strings.HasSuffix(pattern, "*") && strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))) {
			delete(c.data, key)
		}
	}
	return nil
}

type invalidatorStub struct {
	kinds []models.ScheduleKind
	err   error
}

func (s *invalidatorStub) Invalidate(ctx context.Context, kind models.ScheduleKind) error {
	s.kinds = append(s.kinds, kind)
	return s.err
}
