package domain

// VPC is a virtual network and its tags as listed from the provider.
type VPC struct {
	ID   string
	Tags Tags
}

// NetworkResource is a resource attributed to exactly one VPC. Err is set
// when the provider record lacked the fields needed to find that VPC; VpcID
// is empty in that case.
type NetworkResource struct {
	Category Category
	ID       string
	VpcID    string
	Err      error
}
