package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugmood/hugmood/backend/internal/models"
)

// mockMoodEntryRepository is an in-memory MoodEntryRepository for testing
type mockMoodEntryRepository struct {
	entries     []models.MoodEntry // newest first
	createCalls int
	createErr   error
	deletedIDs  []string
}

func newMockMoodEntryRepository() *mockMoodEntryRepository {
	return &mockMoodEntryRepository{}
}

func (m *mockMoodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	// prepend to keep newest first
	m.entries = append([]models.MoodEntry{*entry}, m.entries...)
	return entry, nil
}

func (m *mockMoodEntryRepository) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockMoodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.MoodEntry, error) {
	var result []models.MoodEntry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (m *mockMoodEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
	return m.GetByUserIDAndDateRange(ctx, userID, time.Time{}, time.Time{})
}

// mockActivityLogRepository is an in-memory ActivityLogRepository
type mockActivityLogRepository struct {
	logs     []models.ActivityLog
	getCalls int
}

func newMockActivityLogRepository() *mockActivityLogRepository {
	return &mockActivityLogRepository{}
}

func (m *mockActivityLogRepository) Create(ctx context.Context, log *models.ActivityLog) (*models.ActivityLog, error) {
	m.logs = append(m.logs, *log)
	return log, nil
}

func (m *mockActivityLogRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.ActivityLog, error) {
	m.getCalls++
	var result []models.ActivityLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	return result, nil
}

// mockStreakRepository holds a single streak record per user
type mockStreakRepository struct {
	records     map[string]*models.StreakRecord
	getErr      error
	upsertErr   error
	upsertCalls int
}

func newMockStreakRepository() *mockStreakRepository {
	return &mockStreakRepository{records: make(map[string]*models.StreakRecord)}
}

func (m *mockStreakRepository) GetByUserID(ctx context.Context, userID string) (*models.StreakRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if record, ok := m.records[userID]; ok {
		copied := *record
		return &copied, nil
	}
	return nil, nil
}

func (m *mockStreakRepository) Upsert(ctx context.Context, record *models.StreakRecord) (*models.StreakRecord, error) {
	m.upsertCalls++
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	copied := *record
	m.records[record.UserID] = &copied
	return record, nil
}

// mockInsightRepository is an in-memory InsightRepository
type mockInsightRepository struct {
	insights    []models.Insight // newest first
	createCalls int
	createErr   error
	getErr      error
	markedRead  []string
}

func newMockInsightRepository() *mockInsightRepository {
	return &mockInsightRepository{}
}

func (m *mockInsightRepository) Create(ctx context.Context, insight *models.Insight) (*models.Insight, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.insights = append([]models.Insight{*insight}, m.insights...)
	return insight, nil
}

func (m *mockInsightRepository) GetValidByUserID(ctx context.Context, userID string) ([]models.Insight, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	now := time.Now().UTC()
	var result []models.Insight
	for _, insight := range m.insights {
		if insight.UserID == userID && insight.ExpiresAt.After(now) {
			result = append(result, insight)
		}
	}
	return result, nil
}

func (m *mockInsightRepository) GetByID(ctx context.Context, id string) (*models.Insight, error) {
	for _, insight := range m.insights {
		if insight.ID == id {
			copied := insight
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockInsightRepository) MarkRead(ctx context.Context, id string) error {
	m.markedRead = append(m.markedRead, id)
	for i := range m.insights {
		if m.insights[i].ID == id {
			m.insights[i].IsRead = true
			return nil
		}
	}
	return fmt.Errorf("insight %s not found", id)
}

func (m *mockInsightRepository) DeleteExpired(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	kept := m.insights[:0]
	for _, insight := range m.insights {
		if insight.UserID != userID || insight.ExpiresAt.After(now) {
			kept = append(kept, insight)
		}
	}
	m.insights = kept
	return nil
}
