package menu

// Action identifies what a menu entry does. Handlers are looked up by Action,
// never by the text the user typed.
type Action int

const (
	ActionNone Action = iota
	ActionBack

	// Main menu
	ActionCommits
	ActionBranches
	ActionTeam
	ActionQuick
	ActionUndo
	ActionHelp
	ActionExit

	// Commit management
	ActionStage
	ActionCommit
	ActionAmend
	ActionViewCommits
	ActionRevertFold
	ActionRebaseExcise

	// Branch management
	ActionSwitchBranch
	ActionCreateBranch
	ActionDeleteBranch
	ActionPush
	ActionBranchInfo
	ActionBranchDetails

	// Team tools
	ActionRemoteBranches
	ActionCheckoutRemote
	ActionPullRequests
	ActionRemotes

	// Quick actions
	ActionQuickPull
	ActionStashList
	ActionRecentMerges
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionBack:           "back",
	ActionCommits:        "commits",
	ActionBranches:       "branches",
	ActionTeam:           "team",
	ActionQuick:          "quick",
	ActionUndo:           "undo",
	ActionHelp:           "help",
	ActionExit:           "exit",
	ActionStage:          "stage",
	ActionCommit:         "commit",
	ActionAmend:          "amend",
	ActionViewCommits:    "view-commits",
	ActionRevertFold:     "revert-fold",
	ActionRebaseExcise:   "rebase-excise",
	ActionSwitchBranch:   "switch-branch",
	ActionCreateBranch:   "create-branch",
	ActionDeleteBranch:   "delete-branch",
	ActionPush:           "push",
	ActionBranchInfo:     "branch-info",
	ActionBranchDetails:  "branch-details",
	ActionRemoteBranches: "remote-branches",
	ActionCheckoutRemote: "checkout-remote",
	ActionPullRequests:   "pull-requests",
	ActionRemotes:        "remotes",
	ActionQuickPull:      "pull",
	ActionStashList:      "stash-list",
	ActionRecentMerges:   "recent-merges",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
