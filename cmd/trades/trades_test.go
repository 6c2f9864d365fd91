package trades_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khorevkp/KK-Tools/cmd/trades"
)

func TestTradesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "trades", trades.Cmd.Use)
	assert.Contains(t, trades.Cmd.Short, "FIS upload workbooks")
	assert.Contains(t, trades.Cmd.Long, "360T")
	assert.NotNil(t, trades.Cmd.Run)
}

func TestTradesCommand_Flags(t *testing.T) {
	archiveFlag := trades.Cmd.Flags().Lookup("archive")
	if assert.NotNil(t, archiveFlag) {
		assert.Equal(t, "a", archiveFlag.Shorthand)
	}

	companyFlag := trades.Cmd.Flags().Lookup("company")
	if assert.NotNil(t, companyFlag) {
		assert.Equal(t, "c", companyFlag.Shorthand)
	}
}
