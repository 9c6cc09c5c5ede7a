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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

var testSubnets = []v1alpha1.Subnet{
	{SubnetId: "subnet-a", AvailabilityZone: "us-east-1a", AvailabilityZoneId: "use1-az1", VpcId: "vpc-1"},
	{SubnetId: "subnet-b", AvailabilityZone: "us-east-1b", AvailabilityZoneId: "use1-az2", VpcId: "vpc-1"},
	{SubnetId: "subnet-c", AvailabilityZone: "us-east-1a", AvailabilityZoneId: "use1-az1", VpcId: "vpc-2"},
}

func queueWithSubnets(name string, subnetIDs ...string) v1alpha1.Queue {
	queue := validQueue(name)
	queue.Networking = ptr.To(v1alpha1.QueueNetworking{SubnetIds: subnetIDs})
	return queue
}

func TestValidateSubnets(t *testing.T) {
	tests := []struct {
		name   string
		queues []v1alpha1.Queue
		want   []fieldErr
	}{
		{
			name:   "subnets in one vpc",
			queues: []v1alpha1.Queue{queueWithSubnets("a", "subnet-a"), queueWithSubnets("b", "subnet-a", "subnet-b")},
		},
		{
			name:   "queue without networking",
			queues: []v1alpha1.Queue{validQueue("a")},
		},
		{
			name:   "unknown subnet",
			queues: []v1alpha1.Queue{queueWithSubnets("a", "subnet-a", "subnet-z")},
			want:   []fieldErr{{field.ErrorTypeNotFound, "Scheduling.SlurmQueues[0].Networking.SubnetIds[1]"}},
		},
		{
			name:   "queue spanning two vpcs",
			queues: []v1alpha1.Queue{queueWithSubnets("a", "subnet-a", "subnet-c")},
			want:   []fieldErr{{field.ErrorTypeInvalid, "Scheduling.SlurmQueues[0].Networking.SubnetIds"}},
		},
		{
			name:   "queues in different vpcs",
			queues: []v1alpha1.Queue{queueWithSubnets("a", "subnet-a"), queueWithSubnets("b", "subnet-c")},
			want:   []fieldErr{{field.ErrorTypeInvalid, "Scheduling.SlurmQueues[1].Networking.SubnetIds"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSubnets(QueuesPath, tt.queues, testSubnets)
			assert.Equal(t, tt.want, summarize(got))
		})
	}
}

func TestValidateSubnets_ReportsVpcs(t *testing.T) {
	errs := ValidateSubnets(QueuesPath, []v1alpha1.Queue{queueWithSubnets("a", "subnet-a", "subnet-c")}, testSubnets)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Detail, "vpc-1, vpc-2")
}
