package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
	"github.com/KirkDiggler/rpg-player/internal/testutils"
)

func TestAuditPlayers(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	ctx := context.Background()

	put := func(rec *rpg.Record) {
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		require.NoError(t, mr.Set(playerrepo.GetKey(rec.ID), string(data)))
	}

	put(testutils.WarriorGuardian("good"))

	behind := testutils.RecordAtLevel("behind", 20)
	behind.Experience = 0
	put(behind)

	pathless := testutils.RecordAtLevel("pathless", 40)
	pathless.Classes = []rpg.Class{rpg.ClassGuardian}
	put(pathless)

	require.NoError(t, mr.Set(playerrepo.GetKey("broken"), "{not json"))
	require.NoError(t, mr.Set("other:key", "ignored"))

	report, err := auditPlayers(ctx, client)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, []string{playerrepo.GetKey("broken")}, report.Corrupt)

	invalid := map[string]bool{}
	for _, f := range report.Invalid {
		invalid[f.Key] = true
	}
	assert.True(t, invalid[playerrepo.GetKey("behind")])
	assert.True(t, invalid[playerrepo.GetKey("pathless")])
	assert.False(t, invalid[playerrepo.GetKey("good")])

	var buf bytes.Buffer
	printReport(&buf, report)
	assert.Contains(t, buf.String(), "Checked 4 keys, 1 corrupt")
}

func TestCheckRecordMismatchedID(t *testing.T) {
	reasons := checkRecord(playerrepo.GetKey("u1"), rpg.NewRecord("u2"))
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "does not match key")
}
