package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkHasherRequestStrictRoleFlags(t *testing.T) {
	t.Run("booleans decode and validate", func(t *testing.T) {
		var req LinkHasherRequest
		err := json.Unmarshal([]byte(`{"hasher_id":42,"hare":true,"jedi":false}`), &req)

		require.NoError(t, err)
		require.NoError(t, req.Validate())
		assert.True(t, *req.Hare)
		assert.False(t, *req.Jedi)
	})

	t.Run("truthy string is rejected at decode time", func(t *testing.T) {
		var req LinkHasherRequest
		err := json.Unmarshal([]byte(`{"hasher_id":42,"hare":"yes","jedi":false}`), &req)

		assert.Error(t, err)
	})

	t.Run("numeric flag is rejected at decode time", func(t *testing.T) {
		var req LinkHasherRequest
		err := json.Unmarshal([]byte(`{"hasher_id":42,"hare":1,"jedi":0}`), &req)

		assert.Error(t, err)
	})

	t.Run("omitted flag fails validation", func(t *testing.T) {
		var req LinkHasherRequest
		err := json.Unmarshal([]byte(`{"hasher_id":42,"hare":true}`), &req)

		require.NoError(t, err)
		assert.ErrorIs(t, req.Validate(), errMissingRoleFlags)
	})

	t.Run("missing hasher id fails validation", func(t *testing.T) {
		var req LinkHasherRequest
		err := json.Unmarshal([]byte(`{"hare":true,"jedi":true}`), &req)

		require.NoError(t, err)
		assert.Error(t, req.Validate())
	})
}

func TestUnlinkHashersRequest(t *testing.T) {
	t.Run("empty list fails validation", func(t *testing.T) {
		req := UnlinkHashersRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("non-empty list passes", func(t *testing.T) {
		req := UnlinkHashersRequest{HasherIDs: []uint{7, 12}}
		assert.NoError(t, req.Validate())
	})
}

func TestCreateEventRequest(t *testing.T) {
	valid := CreateEventRequest{
		KennelID: 1,
		Title:    "Anniversary Trail",
		Number:   250,
		EvDate:   "2024-06-01",
		Location: "Trailhead Park",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("malformed date", func(t *testing.T) {
		req := valid
		req.EvDate = "June 1st"
		assert.Error(t, req.Validate())
	})

	t.Run("missing kennel", func(t *testing.T) {
		req := valid
		req.KennelID = 0
		assert.Error(t, req.Validate())
	})
}
