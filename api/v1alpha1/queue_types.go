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

// AllocationStrategy governs how the scheduler picks among the instance
// types of a compute resource.
// +kubebuilder:validation:Enum=lowest-price;capacity-optimized
type AllocationStrategy string

const (
	// AllocationStrategyLowestPrice launches the cheapest available instance type
	AllocationStrategyLowestPrice AllocationStrategy = "lowest-price"
	// AllocationStrategyCapacityOptimized launches from the deepest capacity pool
	AllocationStrategyCapacityOptimized AllocationStrategy = "capacity-optimized"
)

// IsValid reports whether s is one of the known allocation strategies
func (s AllocationStrategy) IsValid() bool {
	switch s {
	case AllocationStrategyLowestPrice, AllocationStrategyCapacityOptimized:
		return true
	}
	return false
}

// Queue is a named group of compute resources sharing one allocation
// strategy and optional subnet placement.
type Queue struct {
	// Name identifies the queue, unique within the owning list
	// +kubebuilder:validation:MinLength=1
	Name string `json:"Name"`

	// AllocationStrategy applies to every compute resource of the queue
	// +optional
	AllocationStrategy AllocationStrategy `json:"AllocationStrategy,omitempty"`

	// ComputeResources is ordered; the position of each entry is the key
	// used by validation results.
	ComputeResources []ComputeResource `json:"ComputeResources"`

	// Networking holds optional subnet placement
	// +optional
	Networking *QueueNetworking `json:"Networking,omitempty"`
}

// QueueNetworking defines the subnets a queue launches into
type QueueNetworking struct {
	// SubnetIds may be empty
	// +optional
	SubnetIds []string `json:"SubnetIds,omitempty"`
}

// SubnetIDs returns the subnets of the queue, or nil when no networking is set
func (q *Queue) SubnetIDs() []string {
	if q.Networking == nil {
		return nil
	}
	return q.Networking.SubnetIds
}

// NewQueue returns a queue holding a single default compute resource
func NewQueue(name string) Queue {
	return Queue{
		Name:               name,
		AllocationStrategy: AllocationStrategyLowestPrice,
		ComputeResources: []ComputeResource{
			NewComputeResource(name + DefaultComputeResourceSuffix),
		},
	}
}
