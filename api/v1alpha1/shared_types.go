/*
MIT License

Copyright (c) 2025 Amazon Web Services

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package v1alpha1

// Tag is a key/value pair; keys are not guaranteed unique within a tag set
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Subnet describes a VPC subnet a queue may be placed into
type Subnet struct {
	// SubnetId is unique across subnets
	SubnetId string `json:"SubnetId"`

	AvailabilityZone   string `json:"AvailabilityZone"`
	AvailabilityZoneId string `json:"AvailabilityZoneId"`
	VpcId              string `json:"VpcId"`

	// +optional
	Tags []Tag `json:"Tags,omitempty"`
}

// ClusterResourcesLimits are the ceilings on queues and compute resources
// supplied by the limits authority. A zero ceiling disables additions.
type ClusterResourcesLimits struct {
	// +kubebuilder:validation:Minimum=0
	MaxQueues int `json:"maxQueues"`

	// +kubebuilder:validation:Minimum=0
	MaxCRPerQueue int `json:"maxCRPerQueue"`

	// +kubebuilder:validation:Minimum=0
	MaxCRPerCluster int `json:"maxCRPerCluster"`
}
