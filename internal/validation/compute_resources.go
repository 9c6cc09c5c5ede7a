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

// Package validation checks queue configurations. ValidateComputeResources
// produces the per-index error codes shown next to compute resources; the
// field validators report structural precondition violations.
package validation

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

// ErrorCode identifies why a compute resource is invalid
type ErrorCode string

const (
	// InstanceTypeUnique marks a resource sharing an instance type with
	// another resource of the same queue
	InstanceTypeUnique ErrorCode = "instance_type_unique"
	// InstanceTypesEmpty marks a resource with no instance types
	InstanceTypesEmpty ErrorCode = "instance_types_empty"
)

// QueueValidationErrors maps a compute resource index to its error code.
// A missing index means the resource is valid.
type QueueValidationErrors map[int]ErrorCode

// Valid reports whether no compute resource carries an error
func (e QueueValidationErrors) Valid() bool {
	return len(e) == 0
}

// EffectiveInstanceTypes returns the instance types a compute resource resolves
// to, whichever shape it uses
func EffectiveInstanceTypes(cr *v1alpha1.ComputeResource) sets.Set[string] {
	return sets.New(cr.InstanceTypes()...)
}

// ValidateComputeResources checks the compute resources of one queue. Instance
// types must be partitioned disjointly across resources, so every resource
// naming a type also named by another index is flagged. An empty set takes
// precedence over a duplicate.
func ValidateComputeResources(resources []v1alpha1.ComputeResource) QueueValidationErrors {
	errs := QueueValidationErrors{}

	effective := make([]sets.Set[string], len(resources))
	owners := make(map[string]int)
	for i := range resources {
		effective[i] = EffectiveInstanceTypes(&resources[i])
		for instanceType := range effective[i] {
			owners[instanceType]++
		}
	}

	for i, instanceTypes := range effective {
		if instanceTypes.Len() == 0 {
			errs[i] = InstanceTypesEmpty
			continue
		}
		for instanceType := range instanceTypes {
			if owners[instanceType] > 1 {
				errs[i] = InstanceTypeUnique
				break
			}
		}
	}

	return errs
}
