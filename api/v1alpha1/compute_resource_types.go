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

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Defaults applied to freshly created compute resources
const (
	DefaultMinCount = 0
	DefaultMaxCount = 4

	// DefaultComputeResourceSuffix is appended to the queue name to name
	// the first compute resource of a new queue
	DefaultComputeResourceSuffix = "-cr-0"
)

// ErrAmbiguousInstanceSelection is returned when a compute resource carries
// both InstanceType and Instances
var ErrAmbiguousInstanceSelection = errors.New("compute resource sets both InstanceType and Instances")

// ComputeResource is a bounded-count group of interchangeable instance types.
//
// Selection is either SingleInstance, MultiInstance or nil when the
// instance types were left out entirely. On the wire the two shapes are told
// apart by the presence of InstanceType or Instances.
type ComputeResource struct {
	// Name is unique within the owning queue
	Name string

	// MinCount is the number of instances kept running
	// +kubebuilder:validation:Minimum=0
	MinCount int

	// MaxCount bounds the number of instances, MinCount <= MaxCount
	// +kubebuilder:validation:Minimum=0
	MaxCount int

	// Selection holds the instance types of the resource
	// +optional
	Selection InstanceSelection

	// CapacityReservationTarget pins launches to a reservation, nil means no targeting
	// +optional
	CapacityReservationTarget *CapacityReservationTarget
}

// InstanceSelection is implemented by SingleInstance and MultiInstance only
type InstanceSelection interface {
	// InstanceTypes returns the named instance types in declaration order,
	// skipping blank entries
	InstanceTypes() []string

	isInstanceSelection()
}

// SingleInstance is the legacy shape naming exactly one instance type
type SingleInstance struct {
	InstanceType string
}

// InstanceTypes implements InstanceSelection
func (s SingleInstance) InstanceTypes() []string {
	if s.InstanceType == "" {
		return nil
	}
	return []string{s.InstanceType}
}

func (SingleInstance) isInstanceSelection() {}

// MultiInstance lists several instance types, each from a distinct family
type MultiInstance struct {
	Instances []ComputeResourceInstance
}

// InstanceTypes implements InstanceSelection
func (m MultiInstance) InstanceTypes() []string {
	types := make([]string, 0, len(m.Instances))
	for _, instance := range m.Instances {
		if instance.InstanceType == "" {
			continue
		}
		types = append(types, instance.InstanceType)
	}
	return types
}

func (MultiInstance) isInstanceSelection() {}

// ComputeResourceInstance is one entry of a MultiInstance selection
type ComputeResourceInstance struct {
	InstanceType string `json:"InstanceType"`
}

// NewComputeResource returns an empty-selection compute resource with the default bounds
func NewComputeResource(name string) ComputeResource {
	return ComputeResource{
		Name:      name,
		MinCount:  DefaultMinCount,
		MaxCount:  DefaultMaxCount,
		Selection: MultiInstance{Instances: []ComputeResourceInstance{}},
	}
}

// NewMultiInstance builds a MultiInstance selection from instance type names
func NewMultiInstance(instanceTypes ...string) MultiInstance {
	instances := make([]ComputeResourceInstance, 0, len(instanceTypes))
	for _, t := range instanceTypes {
		instances = append(instances, ComputeResourceInstance{InstanceType: t})
	}
	return MultiInstance{Instances: instances}
}

// InstanceTypes returns the instance types named by the resource, or nil
// when no selection is set
func (c *ComputeResource) InstanceTypes() []string {
	if c.Selection == nil {
		return nil
	}
	return c.Selection.InstanceTypes()
}

type computeResourceWire struct {
	Name                      string                         `json:"Name"`
	MinCount                  int                            `json:"MinCount"`
	MaxCount                  int                            `json:"MaxCount"`
	InstanceType              *string                        `json:"InstanceType,omitempty"`
	Instances                 *[]ComputeResourceInstance     `json:"Instances,omitempty"`
	CapacityReservationTarget *capacityReservationTargetWire `json:"CapacityReservationTarget,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (c ComputeResource) MarshalJSON() ([]byte, error) {
	wire := computeResourceWire{
		Name:     c.Name,
		MinCount: c.MinCount,
		MaxCount: c.MaxCount,
	}

	switch selection := c.Selection.(type) {
	case nil:
	case SingleInstance:
		instanceType := selection.InstanceType
		wire.InstanceType = &instanceType
	case MultiInstance:
		instances := selection.Instances
		if instances == nil {
			instances = []ComputeResourceInstance{}
		}
		wire.Instances = &instances
	default:
		return nil, fmt.Errorf("unsupported instance selection %T", c.Selection)
	}

	if target := c.CapacityReservationTarget; target != nil {
		if wire.CapacityReservationTarget = target.toWire(); wire.CapacityReservationTarget == nil {
			return nil, fmt.Errorf("compute resource %q: unknown capacity reservation target kind %q", c.Name, target.Kind)
		}
	}

	return json.Marshal(wire)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *ComputeResource) UnmarshalJSON(data []byte) error {
	var wire computeResourceWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	resource := ComputeResource{
		Name:     wire.Name,
		MinCount: wire.MinCount,
		MaxCount: wire.MaxCount,
	}

	switch {
	case wire.InstanceType != nil && wire.Instances != nil:
		return fmt.Errorf("compute resource %q: %w", wire.Name, ErrAmbiguousInstanceSelection)
	case wire.InstanceType != nil:
		resource.Selection = SingleInstance{InstanceType: *wire.InstanceType}
	case wire.Instances != nil:
		resource.Selection = MultiInstance{Instances: *wire.Instances}
	}

	target, err := wire.CapacityReservationTarget.toTarget()
	if err != nil {
		return fmt.Errorf("compute resource %q: %w", wire.Name, err)
	}
	resource.CapacityReservationTarget = target

	*c = resource
	return nil
}
