package critic

import (
	"fmt"

	"perlhq/critic/pkg/ptree"
)

// Violation reports one policy hit on one node. It references the offending
// node for source-location reporting but never owns or mutates the tree.
type Violation struct {
	// Policy is the name of the policy that produced the violation.
	Policy string `json:"policy"`

	// Severity grades the violation on the 1..5 scale.
	Severity Severity `json:"severity"`

	// Message is the short, keyword-specific description.
	Message string `json:"message"`

	// Explanation is the fixed background text for the policy.
	Explanation string `json:"explanation,omitempty"`

	// Node is the offending tree node.
	Node *ptree.Node `json:"-"`

	// Location is the source position of the offending node.
	Location ptree.Location `json:"location"`
}

// String renders the violation in the classic one-line report shape.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s [%s, severity %d]", v.Location, v.Message, v.Policy, v.Severity)
}
