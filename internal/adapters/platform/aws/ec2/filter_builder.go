package ec2

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

const (
	instanceStateFilter = "instance-state-name"
	natStateFilter      = "state"
)

// Terminated instances and deleted NAT gateways linger in describe output
// but cannot be tagged.
var liveStates = map[domain.Category][]string{
	domain.CategoryEC2: {"pending", "running", "shutting-down", "stopping", "stopped"},
	domain.CategoryNGW: {"pending", "available"},
}

// BuildListFilters returns the describe filters applied when listing a
// category. Internet gateways have no lifecycle state to filter on.
func BuildListFilters(category domain.Category) []types.Filter {
	states, ok := liveStates[category]
	if !ok {
		return nil
	}
	name := instanceStateFilter
	if category == domain.CategoryNGW {
		name = natStateFilter
	}
	values := make([]string, len(states))
	copy(values, states)
	return []types.Filter{{Name: aws.String(name), Values: values}}
}
