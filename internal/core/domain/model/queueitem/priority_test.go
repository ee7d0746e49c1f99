package queueitem_test

import (
	"testing"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_String(t *testing.T) {
	cases := map[queueitem.Priority]string{
		queueitem.PriorityLow:     "LOW",
		queueitem.PriorityNormal:  "NORMAL",
		queueitem.PriorityHigh:    "HIGH",
		queueitem.PriorityUrgent:  "URGENT",
		queueitem.PriorityUnknown: "UNKNOWN",
	}

	for priority, expected := range cases {
		assert.Equal(t, expected, priority.String())
	}
}

func TestParsePriority(t *testing.T) {
	t.Run("parses every persisted name", func(t *testing.T) {
		for _, name := range []string{"LOW", "NORMAL", "HIGH", "URGENT"} {
			priority, err := queueitem.ParsePriority(name)
			require.NoError(t, err)
			assert.Equal(t, name, priority.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := queueitem.ParsePriority("CRITICAL")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPriority_Validate(t *testing.T) {
	for _, priority := range []queueitem.Priority{
		queueitem.PriorityLow,
		queueitem.PriorityNormal,
		queueitem.PriorityHigh,
		queueitem.PriorityUrgent,
	} {
		require.NoError(t, priority.Validate())
	}

	require.ErrorIs(t, queueitem.PriorityUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, queueitem.Priority(99).Validate(), errs.ErrValueIsInvalid)
}

func TestPriorityRankAscending(t *testing.T) {
	// The slice order is the ordering contract: URGENT outranks HIGH outranks
	// NORMAL outranks LOW.
	assert.Equal(t, []string{"LOW", "NORMAL", "HIGH", "URGENT"}, queueitem.PriorityRankAscending())
}
