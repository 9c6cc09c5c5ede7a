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

// Package review evaluates a snapshot of queues the way the configuration
// editor consumes it: error annotations per compute resource and whether the
// add actions are enabled.
package review

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
	"github.com/aws/aws-parallelcluster-ui/internal/limits"
	"github.com/aws/aws-parallelcluster-ui/internal/validation"
)

// QueueReport holds the annotations of one queue
type QueueReport struct {
	Name string `json:"name"`

	// Errors is keyed by compute resource index; missing indexes are valid
	Errors validation.QueueValidationErrors `json:"errors,omitempty"`

	// CanAddComputeResource is false once either the queue or the cluster
	// ceiling is reached
	CanAddComputeResource bool `json:"canAddComputeResource"`
}

// Report holds the annotations of a list of queues
type Report struct {
	Queues               []QueueReport                   `json:"queues"`
	Limits               v1alpha1.ClusterResourcesLimits `json:"limits"`
	ComputeResourceCount int                             `json:"computeResourceCount"`
	CanAddQueue          bool                            `json:"canAddQueue"`

	// Preconditions lists structural violations found by Check
	Preconditions []string `json:"preconditions,omitempty"`
}

// Valid reports whether no queue carries a compute resource error and no
// precondition is violated
func (r *Report) Valid() bool {
	if len(r.Preconditions) > 0 {
		return false
	}
	for i := range r.Queues {
		if !r.Queues[i].Errors.Valid() {
			return false
		}
	}
	return true
}

// Review annotates the queues against the limits
func Review(queues []v1alpha1.Queue, clusterLimits v1alpha1.ClusterResourcesLimits) Report {
	crCount := limits.CountComputeResources(queues)
	canAddToCluster := limits.CanAddComputeResourceCluster(crCount, clusterLimits)

	report := Report{
		Queues:               make([]QueueReport, 0, len(queues)),
		Limits:               clusterLimits,
		ComputeResourceCount: crCount,
		CanAddQueue:          limits.CanAddQueue(len(queues), clusterLimits),
	}

	for i := range queues {
		queue := &queues[i]
		report.Queues = append(report.Queues, QueueReport{
			Name:   queue.Name,
			Errors: validation.ValidateComputeResources(queue.ComputeResources),
			CanAddComputeResource: canAddToCluster &&
				limits.CanAddComputeResource(len(queue.ComputeResources), clusterLimits),
		})
	}

	return report
}

// Check reviews the queues of a cluster configuration and adds the structural
// precondition violations. Subnets are only checked when a subnet list is given.
func Check(cfg *v1alpha1.ClusterConfiguration, subnets []v1alpha1.Subnet, clusterLimits v1alpha1.ClusterResourcesLimits) Report {
	queues := cfg.Scheduling.SlurmQueues
	report := Review(queues, clusterLimits)

	allErrs := validation.ValidateQueues(validation.QueuesPath, queues)
	if subnets != nil {
		allErrs = append(allErrs, validation.ValidateSubnets(validation.QueuesPath, queues, subnets)...)
	}
	report.Preconditions = describe(allErrs)

	return report
}

func describe(allErrs field.ErrorList) []string {
	if len(allErrs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(allErrs))
	for _, err := range allErrs {
		messages = append(messages, err.Error())
	}
	return messages
}
