// Package aws provides the AWS clients used to resolve cluster resource limits.
package aws

const (
	// DefaultClusterResourcesLimitsParameter is the SSM parameter holding the
	// cluster resources limits as a JSON document
	DefaultClusterResourcesLimitsParameter = "/parallelcluster/ui/cluster-resources-limits"
)
