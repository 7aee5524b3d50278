// Package llm defines the wire types and error taxonomy shared between the
// HTTP layer and the upstream generation client. The types mirror the
// generateContent request/response schema so conversations pass through
// without re-mapping.
package llm

// Role constants for the Content.Role field.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is a single content fragment of a conversation turn. Only text parts
// are meaningful to this service.
type Part struct {
	Text string `json:"text,omitempty"`
}

// Content is one turn of a conversation.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// ValidRole reports whether role is one of the accepted conversation roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleModel
}

// Result is the outcome of one successful upstream generation call.
type Result struct {
	Text    string // Raw generated text, before post-processing.
	Retries int    // Failed attempts before the one that succeeded.
	Model   string // Model identifier that produced the text.
}
