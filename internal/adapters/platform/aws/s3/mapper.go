package s3

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

func fromS3Tags(tagSet []s3types.Tag) domain.Tags {
	out := make(domain.Tags, len(tagSet))
	for _, tag := range tagSet {
		if tag.Key != nil {
			out[*tag.Key] = aws.ToString(tag.Value)
		}
	}
	return out
}

func toS3Tags(tags domain.Tags) []s3types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]s3types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, s3types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}
