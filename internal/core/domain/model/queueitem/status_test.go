package queueitem_test

import (
	"fmt"
	"testing"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[queueitem.Status]string{
		queueitem.StatusWaiting:     "WAITING",
		queueitem.StatusInDiagnosis: "IN_DIAGNOSIS",
		queueitem.StatusInRepair:    "IN_REPAIR",
		queueitem.StatusDone:        "DONE",
		queueitem.StatusUnknown:     "UNKNOWN",
		queueitem.Status(42):        "UNKNOWN",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("parses every persisted name", func(t *testing.T) {
		for _, name := range []string{"WAITING", "IN_DIAGNOSIS", "IN_REPAIR", "DONE"} {
			status, err := queueitem.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := queueitem.ParseStatus("AGUARDANDO")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		valid := []queueitem.Status{
			queueitem.StatusWaiting,
			queueitem.StatusInDiagnosis,
			queueitem.StatusInRepair,
			queueitem.StatusDone,
		}
		for _, status := range valid {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("rejects Unknown", func(t *testing.T) {
		require.ErrorIs(t, queueitem.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition struct {
		name     string
		from     queueitem.Status
		apply    func(queueitem.Status) (queueitem.Status, error)
		to       queueitem.Status
		required queueitem.Status
	}

	transitions := []transition{
		{
			name:     "start diagnosis",
			from:     queueitem.StatusWaiting,
			apply:    queueitem.Status.StartDiagnosis,
			to:       queueitem.StatusInDiagnosis,
			required: queueitem.StatusWaiting,
		},
		{
			name:     "complete diagnosis returns to waiting",
			from:     queueitem.StatusInDiagnosis,
			apply:    queueitem.Status.CompleteDiagnosis,
			to:       queueitem.StatusWaiting,
			required: queueitem.StatusInDiagnosis,
		},
		{
			name:     "start repair",
			from:     queueitem.StatusWaiting,
			apply:    queueitem.Status.StartRepair,
			to:       queueitem.StatusInRepair,
			required: queueitem.StatusWaiting,
		},
		{
			name:     "complete repair",
			from:     queueitem.StatusInRepair,
			apply:    queueitem.Status.CompleteRepair,
			to:       queueitem.StatusDone,
			required: queueitem.StatusInRepair,
		},
	}

	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.apply(tc.from)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})

		t.Run(tc.name+" rejects every other status", func(t *testing.T) {
			all := []queueitem.Status{
				queueitem.StatusWaiting,
				queueitem.StatusInDiagnosis,
				queueitem.StatusInRepair,
				queueitem.StatusDone,
			}
			for _, from := range all {
				if from == tc.from {
					continue
				}
				t.Run(fmt.Sprintf("from %s", from), func(t *testing.T) {
					_, err := tc.apply(from)
					require.ErrorIs(t, err, queueitem.ErrInvalidStatusTransition)

					var transitionErr *queueitem.StatusTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, from, transitionErr.Actual)
					assert.Equal(t, tc.required, transitionErr.Required)
				})
			}
		})
	}
}

func TestStatus_DoneIsTerminal(t *testing.T) {
	done := queueitem.StatusDone

	_, err := done.StartDiagnosis()
	require.ErrorIs(t, err, queueitem.ErrInvalidStatusTransition)
	_, err = done.StartRepair()
	require.ErrorIs(t, err, queueitem.ErrInvalidStatusTransition)
	_, err = done.CompleteDiagnosis()
	require.ErrorIs(t, err, queueitem.ErrInvalidStatusTransition)
	_, err = done.CompleteRepair()
	require.ErrorIs(t, err, queueitem.ErrInvalidStatusTransition)
}
