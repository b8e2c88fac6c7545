package ec2

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

func mapVPC(vpc types.Vpc) (domain.VPC, error) {
	if vpc.VpcId == nil {
		return domain.VPC{}, errors.New(errors.CodeMalformedSchema, "received VPC with nil VpcId")
	}
	return domain.VPC{ID: *vpc.VpcId, Tags: fromEC2Tags(vpc.Tags)}, nil
}

// mapInstance returns ok=false when the record has no InstanceId at all.
func mapInstance(instance types.Instance) (domain.NetworkResource, bool) {
	if instance.InstanceId == nil {
		return domain.NetworkResource{}, false
	}
	res := domain.NetworkResource{Category: domain.CategoryEC2, ID: *instance.InstanceId}
	if vpcID := aws.ToString(instance.VpcId); vpcID != "" {
		res.VpcID = vpcID
	} else {
		res.Err = errors.New(errors.CodeMalformedSchema, fmt.Sprintf("EC2 instance %s has no VpcId", res.ID))
	}
	return res, true
}

// mapInternetGateway attributes a gateway to its first attachment's VPC.
// Detached gateways have an empty attachment list.
func mapInternetGateway(igw types.InternetGateway) (domain.NetworkResource, bool) {
	if igw.InternetGatewayId == nil {
		return domain.NetworkResource{}, false
	}
	res := domain.NetworkResource{Category: domain.CategoryIGW, ID: *igw.InternetGatewayId}
	switch {
	case len(igw.Attachments) == 0:
		res.Err = errors.New(errors.CodeMalformedSchema, fmt.Sprintf("internet gateway %s has no attachments", res.ID))
	case aws.ToString(igw.Attachments[0].VpcId) == "":
		res.Err = errors.New(errors.CodeMalformedSchema, fmt.Sprintf("internet gateway %s attachment has no VpcId", res.ID))
	default:
		res.VpcID = aws.ToString(igw.Attachments[0].VpcId)
	}
	return res, true
}

func mapNatGateway(nat types.NatGateway) (domain.NetworkResource, bool) {
	if nat.NatGatewayId == nil {
		return domain.NetworkResource{}, false
	}
	res := domain.NetworkResource{Category: domain.CategoryNGW, ID: *nat.NatGatewayId}
	if vpcID := aws.ToString(nat.VpcId); vpcID != "" {
		res.VpcID = vpcID
	} else {
		res.Err = errors.New(errors.CodeMalformedSchema, fmt.Sprintf("NAT gateway %s has no VpcId", res.ID))
	}
	return res, true
}

func fromEC2Tags(tags []types.Tag) domain.Tags {
	out := make(domain.Tags, len(tags))
	for _, tag := range tags {
		if tag.Key != nil {
			out[*tag.Key] = aws.ToString(tag.Value)
		}
	}
	return out
}

// toEC2Tags converts tags in key order so request payloads are stable.
func toEC2Tags(tags domain.Tags) []types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}
