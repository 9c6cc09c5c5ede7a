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

package validation

import (
	"fmt"
	"regexp"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

var (
	capacityReservationIDPattern = regexp.MustCompile(`^cr-[0-9a-f]+$`)
	resourceGroupArnPattern      = regexp.MustCompile(`^arn:aws[a-z-]*:resource-groups:[a-z0-9-]+:[0-9]{12}:group/.+$`)

	supportedAllocationStrategies = []v1alpha1.AllocationStrategy{
		v1alpha1.AllocationStrategyLowestPrice,
		v1alpha1.AllocationStrategyCapacityOptimized,
	}
)

// QueuesPath is the location of the queues in a cluster configuration
var QueuesPath = field.NewPath("Scheduling", "SlurmQueues")

// ValidateQueues checks every queue and that queue names are unique
func ValidateQueues(path *field.Path, queues []v1alpha1.Queue) field.ErrorList {
	var allErrs field.ErrorList

	seen := make(map[string]bool, len(queues))
	for i := range queues {
		queuePath := path.Index(i)
		allErrs = append(allErrs, ValidateQueue(queuePath, &queues[i])...)

		name := queues[i].Name
		if name == "" {
			continue
		}
		if seen[name] {
			allErrs = append(allErrs, field.Duplicate(queuePath.Child("Name"), name))
		}
		seen[name] = true
	}

	return allErrs
}

// ValidateQueue checks the preconditions of a single queue
func ValidateQueue(path *field.Path, queue *v1alpha1.Queue) field.ErrorList {
	var allErrs field.ErrorList

	if queue.Name == "" {
		allErrs = append(allErrs, field.Required(path.Child("Name"), "queue name must be non-empty"))
	}

	if queue.AllocationStrategy != "" && !queue.AllocationStrategy.IsValid() {
		allErrs = append(allErrs, field.NotSupported(path.Child("AllocationStrategy"),
			queue.AllocationStrategy, supportedAllocationStrategies))
	}

	resourcesPath := path.Child("ComputeResources")
	if len(queue.ComputeResources) == 0 {
		allErrs = append(allErrs, field.Required(resourcesPath, "queue must define at least one compute resource"))
	}

	names := make(map[string]bool, len(queue.ComputeResources))
	for i := range queue.ComputeResources {
		cr := &queue.ComputeResources[i]
		allErrs = append(allErrs, ValidateComputeResource(resourcesPath.Index(i), cr)...)

		if cr.Name == "" {
			continue
		}
		if names[cr.Name] {
			allErrs = append(allErrs, field.Duplicate(resourcesPath.Index(i).Child("Name"), cr.Name))
		}
		names[cr.Name] = true
	}

	subnetsPath := path.Child("Networking", "SubnetIds")
	subnets := make(map[string]bool)
	for i, subnetID := range queue.SubnetIDs() {
		if subnetID == "" {
			allErrs = append(allErrs, field.Required(subnetsPath.Index(i), "subnet id must be non-empty"))
			continue
		}
		if subnets[subnetID] {
			allErrs = append(allErrs, field.Duplicate(subnetsPath.Index(i), subnetID))
		}
		subnets[subnetID] = true
	}

	return allErrs
}

// ValidateComputeResource checks the count bounds, the instance list and the
// capacity reservation target of a compute resource. Empty and shared instance
// types are left to ValidateComputeResources.
func ValidateComputeResource(path *field.Path, cr *v1alpha1.ComputeResource) field.ErrorList {
	var allErrs field.ErrorList

	if cr.Name == "" {
		allErrs = append(allErrs, field.Required(path.Child("Name"), "compute resource name must be non-empty"))
	}

	if cr.MinCount < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("MinCount"), cr.MinCount, "must be greater than or equal to 0"))
	}
	if cr.MaxCount < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("MaxCount"), cr.MaxCount, "must be greater than or equal to 0"))
	}
	if cr.MinCount > cr.MaxCount {
		allErrs = append(allErrs, field.Invalid(path.Child("MinCount"), cr.MinCount,
			fmt.Sprintf("must be less than or equal to MaxCount (%d)", cr.MaxCount)))
	}

	if multi, ok := cr.Selection.(v1alpha1.MultiInstance); ok {
		instancesPath := path.Child("Instances")
		seen := make(map[string]bool, len(multi.Instances))
		for i, instance := range multi.Instances {
			typePath := instancesPath.Index(i).Child("InstanceType")
			if instance.InstanceType == "" {
				allErrs = append(allErrs, field.Required(typePath, "instance type must be non-empty"))
				continue
			}
			if seen[instance.InstanceType] {
				allErrs = append(allErrs, field.Duplicate(typePath, instance.InstanceType))
			}
			seen[instance.InstanceType] = true
		}
	}

	allErrs = append(allErrs, validateCapacityReservationTarget(path.Child("CapacityReservationTarget"), cr.CapacityReservationTarget)...)

	return allErrs
}

func validateCapacityReservationTarget(path *field.Path, target *v1alpha1.CapacityReservationTarget) field.ErrorList {
	if target == nil {
		return nil
	}

	var allErrs field.ErrorList
	valuePath := path.Child(string(target.Kind))

	switch target.Kind {
	case v1alpha1.CapacityReservationByID:
		if !capacityReservationIDPattern.MatchString(target.Value) {
			allErrs = append(allErrs, field.Invalid(valuePath, target.Value, "must be a capacity reservation id (cr-...)"))
		}
	case v1alpha1.CapacityReservationByResourceGroup:
		if !resourceGroupArnPattern.MatchString(target.Value) {
			allErrs = append(allErrs, field.Invalid(valuePath, target.Value, "must be a resource group ARN"))
		}
	default:
		allErrs = append(allErrs, field.NotSupported(path, target.Kind, []v1alpha1.CapacityReservationTargetKind{
			v1alpha1.CapacityReservationByID,
			v1alpha1.CapacityReservationByResourceGroup,
		}))
	}

	return allErrs
}
