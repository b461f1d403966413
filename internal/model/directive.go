package model

// Directive is one "@doc-name value" instruction found in a comment.
type Directive struct {
	Name  string
	Value string
}

// MergeRequest is a staged intent to fold Source into the reflection of the
// same kind named TargetName. It is only meaningful for the run that staged it.
type MergeRequest struct {
	Source     *Reflection
	TargetName string
	Preferred  bool
}
