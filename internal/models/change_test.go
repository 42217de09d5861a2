package models

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperation_Valid(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		expected bool
	}{
		{name: "insert", op: OpInsert, expected: true},
		{name: "update", op: OpUpdate, expected: true},
		{name: "delete", op: OpDelete, expected: true},
		{name: "empty", op: Operation(""), expected: false},
		{name: "unknown", op: Operation("upsert"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.Valid())
		})
	}
}

func TestChangeRecord_NewerThan(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		self     *ChangeRecord
		other    *ChangeRecord
		name     string
		expected bool
	}{
		{
			name:     "self timestamp greater",
			self:     &ChangeRecord{Timestamp: base.Add(time.Second)},
			other:    &ChangeRecord{Timestamp: base},
			expected: true,
		},
		{
			name:     "self timestamp smaller",
			self:     &ChangeRecord{Timestamp: base},
			other:    &ChangeRecord{Timestamp: base.Add(time.Second)},
			expected: false,
		},
		{
			// Равные timestamp не дают победы: tie-break остается
			// за резолвером конфликтов
			name:     "timestamps equal",
			self:     &ChangeRecord{Timestamp: base},
			other:    &ChangeRecord{Timestamp: base},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.self.NewerThan(tt.other)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestChangeRecord_Key(t *testing.T) {
	record := &ChangeRecord{TableName: "habits", RecordID: "h-1"}
	assert.Equal(t, ChangeKey{TableName: "habits", RecordID: "h-1"}, record.Key())
}

func TestChangeRecord_Clone(t *testing.T) {
	now := time.Now().UTC()

	original := &ChangeRecord{
		Timestamp: now,
		TableName: "habits",
		RecordID:  "h-1",
		DeviceID:  "device-1",
		Payload:   []byte(`{"name":"Morning Run"}`),
		ID:        7,
		Operation: OpUpdate,
		Synced:    true,
	}

	clone := original.Clone()

	assert.Equal(t, original.ID, clone.ID)
	assert.Equal(t, original.TableName, clone.TableName)
	assert.Equal(t, original.RecordID, clone.RecordID)
	assert.Equal(t, original.DeviceID, clone.DeviceID)
	assert.Equal(t, original.Operation, clone.Operation)
	assert.Equal(t, original.Timestamp, clone.Timestamp)
	assert.Equal(t, original.Synced, clone.Synced)
	assert.True(t, bytes.Equal(original.Payload, clone.Payload))

	// Модификация оригинала не должна влиять на клон
	original.Payload[0] = 'X'
	assert.NotEqual(t, original.Payload[0], clone.Payload[0])
}

func TestSyncError_Error(t *testing.T) {
	withCause := &SyncError{Kind: KindServerUnreachable, Err: assert.AnError}
	assert.Contains(t, withCause.Error(), string(KindServerUnreachable))
	assert.Contains(t, withCause.Error(), assert.AnError.Error())
	assert.ErrorIs(t, withCause, assert.AnError)

	withoutCause := &SyncError{Kind: KindStorageUnavailable}
	assert.Equal(t, string(KindStorageUnavailable), withoutCause.Error())
}

func TestSyncResult_AddError(t *testing.T) {
	result := &SyncResult{}
	result.AddError(KindStorageUnavailable, "habits", "h-1", assert.AnError)

	assert.Len(t, result.Errors, 1)
	assert.Equal(t, KindStorageUnavailable, result.Errors[0].Kind)
	assert.Equal(t, "habits", result.Errors[0].TableName)
	assert.Equal(t, "h-1", result.Errors[0].RecordID)
	assert.Equal(t, assert.AnError, result.Errors[0].Err)
}
