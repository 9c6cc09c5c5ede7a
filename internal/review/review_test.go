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

package review_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
	"github.com/aws/aws-parallelcluster-ui/internal/review"
	"github.com/aws/aws-parallelcluster-ui/internal/validation"
)

func computeResource(name string, instanceTypes ...string) v1alpha1.ComputeResource {
	return v1alpha1.ComputeResource{
		Name:      name,
		MaxCount:  4,
		Selection: v1alpha1.NewMultiInstance(instanceTypes...),
	}
}

var _ = Describe("Review", func() {
	var (
		queues        []v1alpha1.Queue
		clusterLimits v1alpha1.ClusterResourcesLimits
	)

	BeforeEach(func() {
		clusterLimits = v1alpha1.ClusterResourcesLimits{MaxQueues: 3, MaxCRPerQueue: 2, MaxCRPerCluster: 4}
		queues = []v1alpha1.Queue{
			{
				Name:               "cpu",
				AllocationStrategy: v1alpha1.AllocationStrategyLowestPrice,
				ComputeResources: []v1alpha1.ComputeResource{
					computeResource("c5", "c5.large"),
					computeResource("m5", "m5.large"),
				},
			},
			{
				Name:               "gpu",
				AllocationStrategy: v1alpha1.AllocationStrategyCapacityOptimized,
				ComputeResources: []v1alpha1.ComputeResource{
					computeResource("g5", "g5.xlarge"),
				},
			},
		}
	})

	Context("when every queue is valid and under the limits", func() {
		It("should enable all add actions", func() {
			report := review.Review(queues, clusterLimits)

			Expect(report.Valid()).To(BeTrue())
			Expect(report.CanAddQueue).To(BeTrue())
			Expect(report.ComputeResourceCount).To(Equal(3))
			Expect(report.Queues).To(HaveLen(2))
			Expect(report.Queues[0].CanAddComputeResource).To(BeFalse(), "cpu is at MaxCRPerQueue")
			Expect(report.Queues[1].CanAddComputeResource).To(BeTrue())
		})
	})

	Context("when a queue shares instance types between compute resources", func() {
		It("should annotate both compute resources", func() {
			queues[0].ComputeResources[1] = computeResource("m5", "c5.large")

			report := review.Review(queues, clusterLimits)

			Expect(report.Valid()).To(BeFalse())
			Expect(report.Queues[0].Errors).To(Equal(validation.QueueValidationErrors{
				0: validation.InstanceTypeUnique,
				1: validation.InstanceTypeUnique,
			}))
			Expect(report.Queues[1].Errors).To(BeEmpty())
		})

		It("should not compare instance types across queues", func() {
			queues[1].ComputeResources[0] = computeResource("g5", "c5.large")

			report := review.Review(queues, clusterLimits)

			Expect(report.Valid()).To(BeTrue())
		})
	})

	Context("when the cluster ceiling is reached", func() {
		It("should block compute resource additions in every queue", func() {
			queues[1].ComputeResources = append(queues[1].ComputeResources, computeResource("p4", "p4d.24xlarge"))

			report := review.Review(queues, clusterLimits)

			Expect(report.ComputeResourceCount).To(Equal(4))
			for _, queue := range report.Queues {
				Expect(queue.CanAddComputeResource).To(BeFalse(), queue.Name)
			}
		})
	})

	Context("when the limits shrink below the current configuration", func() {
		It("should only block additions", func() {
			report := review.Review(queues, v1alpha1.ClusterResourcesLimits{MaxQueues: 1, MaxCRPerQueue: 1, MaxCRPerCluster: 1})

			Expect(report.CanAddQueue).To(BeFalse())
			Expect(report.Queues).To(HaveLen(2))
			Expect(report.Valid()).To(BeTrue())
		})
	})

	Context("when the snapshot is reviewed twice", func() {
		It("should produce the same report", func() {
			queues[0].ComputeResources[0].Selection = nil

			Expect(review.Review(queues, clusterLimits)).To(Equal(review.Review(queues, clusterLimits)))
		})
	})
})

var _ = Describe("Check", func() {
	var cfg *v1alpha1.ClusterConfiguration

	BeforeEach(func() {
		cfg = &v1alpha1.ClusterConfiguration{
			Scheduling: v1alpha1.Scheduling{
				Scheduler: v1alpha1.SchedulerSlurm,
				SlurmQueues: []v1alpha1.Queue{
					{
						Name:             "q",
						ComputeResources: []v1alpha1.ComputeResource{computeResource("cr", "c5.large")},
						Networking:       &v1alpha1.QueueNetworking{SubnetIds: []string{"subnet-a"}},
					},
				},
			},
		}
	})

	It("should report no preconditions for a sound configuration", func() {
		report := review.Check(cfg, nil, v1alpha1.ClusterResourcesLimits{MaxQueues: 10, MaxCRPerQueue: 5, MaxCRPerCluster: 50})

		Expect(report.Preconditions).To(BeEmpty())
		Expect(report.Valid()).To(BeTrue())
	})

	It("should report count bounds violations", func() {
		cfg.Scheduling.SlurmQueues[0].ComputeResources[0].MinCount = 10

		report := review.Check(cfg, nil, v1alpha1.ClusterResourcesLimits{MaxQueues: 10, MaxCRPerQueue: 5, MaxCRPerCluster: 50})

		Expect(report.Valid()).To(BeFalse())
		Expect(report.Preconditions).To(ConsistOf(ContainSubstring("Scheduling.SlurmQueues[0].ComputeResources[0].MinCount")))
	})

	It("should check subnets when a subnet list is given", func() {
		subnets := []v1alpha1.Subnet{{SubnetId: "subnet-b", VpcId: "vpc-1"}}

		report := review.Check(cfg, subnets, v1alpha1.ClusterResourcesLimits{MaxQueues: 10, MaxCRPerQueue: 5, MaxCRPerCluster: 50})

		Expect(report.Preconditions).To(ConsistOf(ContainSubstring("subnet-a")))
	})
})
