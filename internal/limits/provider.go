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
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/aws/aws-parallelcluster-ui/api/v1alpha1"
)

// Provider resolves the limits from their authority
type Provider interface {
	Limits(ctx context.Context) (v1alpha1.ClusterResourcesLimits, error)
}

// ParameterReader reads limits stored in a parameter store
type ParameterReader interface {
	GetClusterResourcesLimits(ctx context.Context, name string) (*v1alpha1.ClusterResourcesLimits, error)
}

// StaticProvider always returns the same limits
type StaticProvider v1alpha1.ClusterResourcesLimits

// Limits implements Provider
func (p StaticProvider) Limits(_ context.Context) (v1alpha1.ClusterResourcesLimits, error) {
	return v1alpha1.ClusterResourcesLimits(p), nil
}

// VersionProvider returns the limits of a ParallelCluster version
type VersionProvider struct {
	Version string
}

// Limits implements Provider
func (p VersionProvider) Limits(_ context.Context) (v1alpha1.ClusterResourcesLimits, error) {
	return DefaultLimits(p.Version)
}

// SSMProvider reads the limits from an SSM parameter
type SSMProvider struct {
	reader    ParameterReader
	parameter string
}

// NewSSMProvider creates a provider reading the given parameter
func NewSSMProvider(reader ParameterReader, parameter string) *SSMProvider {
	return &SSMProvider{
		reader:    reader,
		parameter: parameter,
	}
}

// Limits implements Provider
func (p *SSMProvider) Limits(ctx context.Context) (v1alpha1.ClusterResourcesLimits, error) {
	limits, err := p.reader.GetClusterResourcesLimits(ctx, p.parameter)
	if err != nil {
		return v1alpha1.ClusterResourcesLimits{}, fmt.Errorf("failed to read limits from %s: %w", p.parameter, err)
	}
	return *limits, nil
}

// FallbackProvider returns the limits of Primary, or those of Fallback when
// Primary fails
type FallbackProvider struct {
	Primary  Provider
	Fallback Provider
}

// Limits implements Provider
func (p FallbackProvider) Limits(ctx context.Context) (v1alpha1.ClusterResourcesLimits, error) {
	limits, err := p.Primary.Limits(ctx)
	if err == nil {
		return limits, nil
	}

	log.FromContext(ctx).WithName("limits").Info("Primary limits provider failed, using fallback", "error", err.Error())

	limits, fallbackErr := p.Fallback.Limits(ctx)
	if fallbackErr != nil {
		return v1alpha1.ClusterResourcesLimits{}, fmt.Errorf("failed to resolve limits: %w (fallback: %v)", err, fallbackErr)
	}
	return limits, nil
}
