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
	"bytes"
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// SchedulerSlurm is the only scheduler whose queues are described here
const SchedulerSlurm = "slurm"

// ClusterConfiguration is the subset of a cluster configuration document
// holding the queues.
type ClusterConfiguration struct {
	// +optional
	Region string `json:"Region,omitempty"`

	Scheduling Scheduling `json:"Scheduling"`
}

// Scheduling holds the scheduler and its queues
type Scheduling struct {
	// +kubebuilder:default="slurm"
	// +optional
	Scheduler string `json:"Scheduler,omitempty"`

	// +optional
	SlurmQueues []Queue `json:"SlurmQueues,omitempty"`
}

// ParseClusterConfiguration decodes a YAML or JSON cluster configuration
func ParseClusterConfiguration(data []byte) (*ClusterConfiguration, error) {
	cfg := &ClusterConfiguration{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse cluster configuration: %w", err)
	}
	if cfg.Scheduling.Scheduler == "" {
		cfg.Scheduling.Scheduler = SchedulerSlurm
	}
	return cfg, nil
}

// describeSubnetsOutput is the envelope of an EC2 DescribeSubnets response
type describeSubnetsOutput struct {
	Subnets []Subnet `json:"Subnets"`
}

// ParseSubnets decodes a YAML or JSON list of subnets, either bare or wrapped
// in the Subnets envelope of an EC2 DescribeSubnets response
func ParseSubnets(data []byte) ([]Subnet, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subnets: %w", err)
	}

	if trimmed := bytes.TrimSpace(jsonData); len(trimmed) > 0 && trimmed[0] == '{' {
		var output describeSubnetsOutput
		if err := json.Unmarshal(trimmed, &output); err != nil {
			return nil, fmt.Errorf("failed to parse subnets: %w", err)
		}
		if output.Subnets == nil {
			return nil, fmt.Errorf("failed to parse subnets: object has no Subnets list")
		}
		return output.Subnets, nil
	}

	var subnets []Subnet
	if err := json.Unmarshal(jsonData, &subnets); err != nil {
		return nil, fmt.Errorf("failed to parse subnets: %w", err)
	}
	return subnets, nil
}
