package scan_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/scan"
)

func TestEntityLink(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		link := scan.LinkedEntity("Q2912397")

		assert.Equal(t, scan.EntityLinked, link.State)
		assert.Equal(t, "Q2912397", link.ID)
		assert.True(t, link.Linked())
		assert.False(t, link.Unlinked())
		assert.False(t, link.Failed())
	})

	t.Run("unlinked", func(t *testing.T) {
		link := scan.UnlinkedEntity()

		assert.Equal(t, scan.EntityUnlinked, link.State)
		assert.Empty(t, link.ID)
		assert.True(t, link.Unlinked())
		assert.False(t, link.Linked())
	})

	t.Run("failed", func(t *testing.T) {
		cause := errors.NewAPIError("wikidata", 500, "boom")
		link := scan.FailedEntity(cause)

		assert.Equal(t, scan.EntityError, link.State)
		assert.True(t, link.Failed())
		assert.Equal(t, cause, link.Err)
		assert.Contains(t, link.Reason, "boom")
	})

	t.Run("failed with nil error", func(t *testing.T) {
		link := scan.FailedEntity(nil)

		assert.True(t, link.Failed())
		assert.Empty(t, link.Reason)
	})

	t.Run("serialized shape follows the state", func(t *testing.T) {
		linked, err := json.Marshal(scan.LinkedEntity("Q42"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"state":"linked","id":"Q42"}`, string(linked))

		unlinked, err := json.Marshal(scan.UnlinkedEntity())
		require.NoError(t, err)
		assert.JSONEq(t, `{"state":"unlinked"}`, string(unlinked))

		failed, err := json.Marshal(scan.FailedEntity(errors.New("lookup failed")))
		require.NoError(t, err)
		assert.JSONEq(t, `{"state":"error","reason":"lookup failed"}`, string(failed))
	})
}

func TestEntityState(t *testing.T) {
	assert.Equal(t, "linked", scan.EntityLinked.String())
	assert.Equal(t, "unlinked", scan.EntityUnlinked.String())
	assert.Equal(t, "error", scan.EntityError.String())
}

func TestResultSummary(t *testing.T) {
	result := &scan.Result{
		Category: "זמרים_ישראלים",
		Language: "he",
		Property: "P434",
		Artists: []scan.Artist{
			{Title: "אמן אחד", PageID: 1, Entity: scan.LinkedEntity("Q1")},
			{Title: "אמן שני", PageID: 2, Entity: scan.UnlinkedEntity()},
		},
		Stats: scan.Stats{
			Members:   10,
			Missing:   2,
			Unlinked:  1,
			Errors:    0,
			WithClaim: 8,
		},
		ExecutedAt: utc.Now(),
		Duration:   3 * time.Second,
	}

	summary := result.Summary()
	assert.Contains(t, summary, "2 of 10")
	assert.Contains(t, summary, "P434")
	assert.Contains(t, summary, "1 unlinked")
	assert.Contains(t, summary, "0 errors")
}
