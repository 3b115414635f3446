package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "render"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRenderCmd_ValidationFailsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "missing milestone",
			args:    []string{"render", "--owner", "octo", "--repo", "hello"},
			wantErr: model.ErrMissingParameters,
		},
		{
			name:    "non-numeric milestone",
			args:    []string{"render", "--owner", "octo", "--repo", "hello", "--milestone", "abc"},
			wantErr: model.ErrInvalidMilestone,
		},
		{
			name:    "zero milestone",
			args:    []string{"render", "--owner", "octo", "--repo", "hello", "--milestone", "0"},
			wantErr: model.ErrInvalidMilestone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestRenderCmd_UnsafeRepositoryNameIsNotFound(t *testing.T) {
	_, err := executeRoot(t, "render", "--owner", "oc/to", "--repo", "hello", "--milestone", "10")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NotErrorIs(t, err, model.ErrInvalidInput)
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "serve", "extra")
	assert.Error(t, err)
}
