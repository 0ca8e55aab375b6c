package constants

// Answer field names, in the order the questions are asked.
const (
	FieldType     = "type"
	FieldScope    = "scope"
	FieldSubject  = "subject"
	FieldBody     = "body"
	FieldBreaking = "breaking"
	FieldIssues   = "issues"
	FieldComment  = "comment"
	FieldWorkflow = "workflow"
	FieldTime     = "time"
)

// MaxLineWidth is the hard limit for the head line and the wrap width for every other line.
const MaxLineWidth = 100
