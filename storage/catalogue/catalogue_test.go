package catalogue

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/event"
)

func TestSample_Events(t *testing.T) {
	ctx := context.Background()
	cat := NewSample()

	events, err := cat.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 6)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "Photography Masterclass", events[5].Title)
	assert.NoError(t, event.CheckIDs(events))

	// callers get copies
	events[0].IsRSVPed = true
	events[0].Tags[0] = "lol"
	again, _ := cat.Events(ctx)
	assert.False(t, again[0].IsRSVPed)
	assert.Equal(t, "Technical", again[0].Tags[0])
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantIDs   []string
		wantErr   error
		wantField string
	}{
		{
			name: "valid",
			doc: `
events:
  - id: " a "
    title: Hackathon
    tags: [Technical, " ", AI]
    date: Nov 15, 2024
    location: Main Hall
  - id: b
    title: Old Fest
    past: true
`,
			wantIDs: []string{"a", "b"},
		},
		{name: "empty", doc: "events: []", wantIDs: []string{}},
		{name: "blank id", doc: "events:\n  - id: ' '\n", wantErr: event.ErrEmptyID, wantField: "events[0].id"},
		{name: "duplicate id", doc: "events:\n  - id: x\n  - id: x\n", wantErr: event.ErrDuplicateID, wantField: "events[1].id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Decode(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				var vErr *core.ValidationError
				require.True(t, errors.As(err, &vErr), "want ValidationError, got %v", err)
				assert.Equal(t, tt.wantErr, vErr.Err)
				assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(events))
			for _, e := range events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	t.Run("cleans fields", func(t *testing.T) {
		events, err := Decode(strings.NewReader("events:\n  - id: a\n    tags: [' Art ', '', Music]\n    past: true\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Art", "Music"}, events[0].Tags)
		assert.True(t, events[0].IsPast)
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, err := Decode(strings.NewReader("events:\n  - id: a\n    venue: nope\n"))
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	cat, err := New("")
	require.NoError(t, err)
	events, _ := cat.Events(ctx)
	assert.Len(t, events, 6)

	dir, err := ioutil.TempDir("", "catalogue")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "events.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("events:\n  - id: z\n    title: Zine Fair\n"), 0o600))

	cat, err = New(path)
	require.NoError(t, err)
	events, _ = cat.Events(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "Zine Fair", events[0].Title)

	_, err = New(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
