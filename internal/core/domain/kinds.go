package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a resource family as it appears as a top-level document key.
type Category string

const (
	CategoryEC2 Category = "ec2"
	CategoryIGW Category = "igw"
	CategoryNGW Category = "ngw"
	CategoryS3  Category = "s3"
)

// NetworkCategories are the categories the discovery job can attribute to a
// VPC. Buckets have no owning network and are only tagged.
var NetworkCategories = []Category{CategoryEC2, CategoryIGW, CategoryNGW}

var AllCategories = []Category{CategoryEC2, CategoryIGW, CategoryNGW, CategoryS3}

func (c Category) String() string {
	return string(c)
}

func (c Category) Description() string {
	switch c {
	case CategoryEC2:
		return "EC2 instance"
	case CategoryIGW:
		return "internet gateway"
	case CategoryNGW:
		return "NAT gateway"
	case CategoryS3:
		return "S3 bucket"
	default:
		return string(c)
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown resource category %q", s)
}

func ParseCategories(values []string) ([]Category, error) {
	seen := make(map[Category]struct{}, len(values))
	out := make([]Category, 0, len(values))
	for _, v := range values {
		c, err := ParseCategory(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func SortCategories(cs []Category) {
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
}
