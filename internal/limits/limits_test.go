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

package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

func TestCanAddQueue(t *testing.T) {
	assert.False(t, CanAddQueue(5, v1alpha1.ClusterResourcesLimits{MaxQueues: 5}))
	assert.True(t, CanAddQueue(5, v1alpha1.ClusterResourcesLimits{MaxQueues: 6}))
}

func TestCanAddQueue_Monotonic(t *testing.T) {
	for maxQueues := 0; maxQueues <= 12; maxQueues++ {
		limits := v1alpha1.ClusterResourcesLimits{MaxQueues: maxQueues}
		for n := 0; n <= 15; n++ {
			assert.Equal(t, n < maxQueues, CanAddQueue(n, limits), "n=%d maxQueues=%d", n, maxQueues)
		}
	}
}

func TestCanAddComputeResource(t *testing.T) {
	limits := v1alpha1.ClusterResourcesLimits{MaxCRPerQueue: 5, MaxCRPerCluster: 50}

	assert.True(t, CanAddComputeResource(0, limits))
	assert.True(t, CanAddComputeResource(4, limits))
	assert.False(t, CanAddComputeResource(5, limits))
	assert.False(t, CanAddComputeResource(7, limits), "over-limit queues stay blocked")

	assert.True(t, CanAddComputeResourceCluster(49, limits))
	assert.False(t, CanAddComputeResourceCluster(50, limits))
}

func TestZeroLimitsDisableAdditions(t *testing.T) {
	var limits v1alpha1.ClusterResourcesLimits

	assert.False(t, CanAddQueue(0, limits))
	assert.False(t, CanAddComputeResource(0, limits))
	assert.False(t, CanAddComputeResourceCluster(0, limits))
}

func TestCountComputeResources(t *testing.T) {
	queues := []v1alpha1.Queue{
		v1alpha1.NewQueue("a"),
		{Name: "b", ComputeResources: make([]v1alpha1.ComputeResource, 3)},
		{Name: "c"},
	}

	assert.Equal(t, 4, CountComputeResources(queues))
	assert.Zero(t, CountComputeResources(nil))
}

func TestDefaultLimits(t *testing.T) {
	tests := []struct {
		version string
		want    v1alpha1.ClusterResourcesLimits
		wantErr bool
	}{
		{version: "3.1.4", want: LegacyLimits},
		{version: "3.2.1", want: LegacyLimits},
		{version: "3.3.0", want: ExtendedLimits},
		{version: "3.3.0-beta1", want: ExtendedLimits},
		{version: "3.10.1", want: ExtendedLimits},
		{version: "not-a-version", wantErr: true},
		{version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := DefaultLimits(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
