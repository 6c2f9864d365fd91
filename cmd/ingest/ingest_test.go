package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khorevkp/KK-Tools/cmd/ingest"
)

func TestIngestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "ingest", ingest.Cmd.Use)
	assert.Contains(t, ingest.Cmd.Short, "deduplication")
	assert.Contains(t, ingest.Cmd.Long, "already seen")
	assert.NotNil(t, ingest.Cmd.Run)
}

func TestIngestCommand_SeenFlag(t *testing.T) {
	seenFlag := ingest.Cmd.Flags().Lookup("seen")
	if assert.NotNil(t, seenFlag) {
		assert.Equal(t, "s", seenFlag.Shorthand)
		assert.Equal(t, "seen_statements.txt", seenFlag.DefValue)
	}
}
