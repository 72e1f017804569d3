package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitOptionsArgs(t *testing.T) {
	date := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name string
		opts CommitOptions
		args []string
		env  []string
	}{
		{
			name: "plain commit",
			opts: CommitOptions{Message: "msg"},
			args: []string{"commit", "-m", "msg"},
		},
		{
			name: "amend without edit",
			opts: CommitOptions{Amend: true, NoEdit: true},
			args: []string{"commit", "--amend", "--no-edit"},
		},
		{
			name: "dated commit",
			opts: CommitOptions{Message: "msg", Date: date, AllowEmpty: true},
			args: []string{"commit", "--allow-empty", "--date", "2024-03-01 09:30:00 +0100", "-m", "msg"},
			env:  []string{"GIT_AUTHOR_DATE=2024-03-01 09:30:00 +0100", "GIT_COMMITTER_DATE=2024-03-01 09:30:00 +0100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.args, tt.opts.args())
			assert.Equal(t, tt.env, tt.opts.env())
		})
	}
}

func TestPushOptionsArgs(t *testing.T) {
	tests := []struct {
		name string
		opts PushOptions
		args []string
	}{
		{name: "upstream push", opts: PushOptions{}, args: []string{"push"}},
		{
			name: "set upstream",
			opts: PushOptions{Remote: "origin", Branch: "feature", SetUpstream: true},
			args: []string{"push", "--set-upstream", "origin", "feature"},
		},
		{
			name: "force with lease",
			opts: PushOptions{ForceWithLease: true},
			args: []string{"push", "--force-with-lease"},
		},
		{
			name: "force wins over lease",
			opts: PushOptions{Force: true, ForceWithLease: true, Remote: "origin"},
			args: []string{"push", "--force", "origin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.args, tt.opts.args())
		})
	}
}
