package domain

// Branch is a git-style version branch in a control-plane deployment.
type Branch struct {
	ID string
}
