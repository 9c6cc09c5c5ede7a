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
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

var (
	// LegacyLimits apply to ParallelCluster releases before 3.3.0
	LegacyLimits = v1alpha1.ClusterResourcesLimits{
		MaxQueues:       10,
		MaxCRPerQueue:   5,
		MaxCRPerCluster: 50,
	}

	// ExtendedLimits apply from ParallelCluster 3.3.0 onwards
	ExtendedLimits = v1alpha1.ClusterResourcesLimits{
		MaxQueues:       50,
		MaxCRPerQueue:   50,
		MaxCRPerCluster: 50,
	}

	extendedLimitsVersion = semver.MustParse("3.3.0")
)

// DefaultLimits returns the limits enforced by the given ParallelCluster version
func DefaultLimits(pclusterVersion string) (v1alpha1.ClusterResourcesLimits, error) {
	v, err := semver.NewVersion(pclusterVersion)
	if err != nil {
		return v1alpha1.ClusterResourcesLimits{}, fmt.Errorf("invalid ParallelCluster version %q: %w", pclusterVersion, err)
	}

	// pre-releases of 3.3.0 already carry the raised limits
	core := semver.New(v.Major(), v.Minor(), v.Patch(), "", "")
	if core.LessThan(extendedLimitsVersion) {
		return LegacyLimits, nil
	}
	return ExtendedLimits, nil
}
