package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apx-soporte/warranty-tracker/constants"
)

func TestJobStatusTerminal(t *testing.T) {
	assert.False(t, constants.JobStatusRunning.Terminal())
	assert.True(t, constants.JobStatusDone.Terminal())
	assert.True(t, constants.JobStatusError.Terminal())
	assert.False(t, constants.JobStatusNotFound.Terminal())
}

func TestParseWorkflowState(t *testing.T) {
	for _, valid := range []string{"", "abonado", "reparado", "no_anomalias"} {
		got, ok := constants.ParseWorkflowState(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, constants.WorkflowState(valid), got)
	}

	_, ok := constants.ParseWorkflowState("perdido")
	assert.False(t, ok)
}

func TestFileKindHelpers(t *testing.T) {
	assert.True(t, constants.IsSpreadsheet("VISUAL_X1.XLSX"))
	assert.True(t, constants.IsSpreadsheet("ficha.xls"))
	assert.False(t, constants.IsSpreadsheet("ficha.pdf"))
	assert.False(t, constants.IsSpreadsheet("sin_extension"))

	assert.True(t, constants.IsPDF("foto.PDF"))
	assert.False(t, constants.IsPDF("foto.png"))
}
