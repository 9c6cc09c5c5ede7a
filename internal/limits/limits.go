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

// Package limits decides whether queues and compute resources may be added
// under the ceilings of a ClusterResourcesLimits value.
package limits

import (
	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

// CanAddQueue reports whether one more queue fits under MaxQueues
func CanAddQueue(currentQueueCount int, limits v1alpha1.ClusterResourcesLimits) bool {
	return currentQueueCount < limits.MaxQueues
}

// CanAddComputeResource reports whether one more compute resource fits in a
// queue holding currentCRCountInQueue resources
func CanAddComputeResource(currentCRCountInQueue int, limits v1alpha1.ClusterResourcesLimits) bool {
	return currentCRCountInQueue < limits.MaxCRPerQueue
}

// CanAddComputeResourceCluster reports whether one more compute resource fits
// in a cluster holding currentCRCountInCluster resources
func CanAddComputeResourceCluster(currentCRCountInCluster int, limits v1alpha1.ClusterResourcesLimits) bool {
	return currentCRCountInCluster < limits.MaxCRPerCluster
}

// CountComputeResources returns the number of compute resources across queues
func CountComputeResources(queues []v1alpha1.Queue) int {
	count := 0
	for i := range queues {
		count += len(queues[i].ComputeResources)
	}
	return count
}
