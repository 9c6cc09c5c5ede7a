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
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

// ValidateSubnets checks that the subnets referenced by the queues exist in the
// given subnet list and that they all belong to a single VPC.
func ValidateSubnets(path *field.Path, queues []v1alpha1.Queue, subnets []v1alpha1.Subnet) field.ErrorList {
	var allErrs field.ErrorList

	known := make(map[string]*v1alpha1.Subnet, len(subnets))
	for i := range subnets {
		known[subnets[i].SubnetId] = &subnets[i]
	}

	clusterVpc := ""
	for i := range queues {
		subnetsPath := path.Index(i).Child("Networking", "SubnetIds")
		vpcs := sets.New[string]()

		for j, subnetID := range queues[i].SubnetIDs() {
			if subnetID == "" {
				continue
			}
			subnet, ok := known[subnetID]
			if !ok {
				allErrs = append(allErrs, field.NotFound(subnetsPath.Index(j), subnetID))
				continue
			}
			vpcs.Insert(subnet.VpcId)
		}

		switch {
		case vpcs.Len() > 1:
			allErrs = append(allErrs, field.Invalid(subnetsPath, queues[i].SubnetIDs(),
				fmt.Sprintf("subnets must belong to the same VPC, found %s", strings.Join(sets.List(vpcs), ", "))))
		case vpcs.Len() == 1:
			vpc := sets.List(vpcs)[0]
			if clusterVpc == "" {
				clusterVpc = vpc
			} else if vpc != clusterVpc {
				allErrs = append(allErrs, field.Invalid(subnetsPath, queues[i].SubnetIDs(),
					fmt.Sprintf("subnets must belong to VPC %s used by the other queues, found %s", clusterVpc, vpc)))
			}
		}
	}

	return allErrs
}
