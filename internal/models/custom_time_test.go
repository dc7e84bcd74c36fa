package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlexibleDateUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "date only",
			input:    `"2026-03-10"`,
			expected: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339",
			input:    `"2026-03-10T15:04:05Z"`,
			expected: time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   `"10/03/2026"`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d FlexibleDate
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.expected.Equal(d.Time))
		})
	}
}

func TestFlexibleDateMarshal(t *testing.T) {
	d := FlexibleDate{Time: time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)}
	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-03-10"`, string(b))
}

func TestMovesPosition(t *testing.T) {
	testCases := []struct {
		typ      TransactionType
		expected bool
	}{
		{typ: TransactionTypeBuy, expected: true},
		{typ: TransactionTypeSell, expected: true},
		{typ: TransactionTypeSubscription, expected: true},
		{typ: TransactionTypeOther, expected: false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.typ), func(t *testing.T) {
			tx := Transaction{Type: tc.typ}
			assert.Equal(t, tc.expected, tx.MovesPosition())
		})
	}
}
