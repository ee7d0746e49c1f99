package commands_test

import (
	"testing"

	"shopqueue/internal/core/application/usecases/commands"
	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnqueueCommand_RejectsInvalidInput(t *testing.T) {
	_, err := commands.NewEnqueueCommand(0, queueitem.PriorityNormal)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewEnqueueCommand(-3, queueitem.PriorityNormal)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewEnqueueCommand(42, queueitem.Priority(99))
	require.Error(t, err)
}

func TestNewStartDiagnosisCommand_RejectsInvalidInput(t *testing.T) {
	_, err := commands.NewStartDiagnosisCommand("", 7)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewStartDiagnosisCommand(testItemID, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCompleteDiagnosisCommand_RequiresQueueItemID(t *testing.T) {
	_, err := commands.NewCompleteDiagnosisCommand("", "notes")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewStartRepairCommand_RejectsInvalidMechanicID(t *testing.T) {
	bad := int64(-1)
	_, err := commands.NewStartRepairCommand(testItemID, &bad)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewStartRepairCommand("", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCompleteRepairCommand_RequiresQueueItemID(t *testing.T) {
	_, err := commands.NewCompleteRepairCommand("", "notes")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangePriorityCommand_RejectsUnknownPriority(t *testing.T) {
	_, err := commands.NewChangePriorityCommand(testItemID, queueitem.Priority(99))
	require.Error(t, err)

	_, err = commands.NewChangePriorityCommand("", queueitem.PriorityHigh)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRemoveFromQueueCommand_RequiresQueueItemID(t *testing.T) {
	_, err := commands.NewRemoveFromQueueCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestZeroValueCommands_FailValidation(t *testing.T) {
	assert.ErrorIs(t, commands.EnqueueCommand{}.Validate(),
		commands.ErrEnqueueCommandIsNotConstructed)
	assert.ErrorIs(t, commands.StartDiagnosisCommand{}.Validate(),
		commands.ErrStartDiagnosisCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CompleteDiagnosisCommand{}.Validate(),
		commands.ErrCompleteDiagnosisCommandIsNotConstructed)
	assert.ErrorIs(t, commands.StartRepairCommand{}.Validate(),
		commands.ErrStartRepairCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CompleteRepairCommand{}.Validate(),
		commands.ErrCompleteRepairCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ChangePriorityCommand{}.Validate(),
		commands.ErrChangePriorityCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RemoveFromQueueCommand{}.Validate(),
		commands.ErrRemoveFromQueueCommandIsNotConstructed)
}
